package surveyfile

import "errors"

// Errors returned for definitions the editor would not be able to represent.
var (
	ErrTooManySteps      = errors.New("too many steps")
	ErrUnexpectedOptions = errors.New("options are only allowed for checkbox and ordering steps")
	ErrNotApplicable     = errors.New("field does not apply to this step type")
	ErrInvalidValue      = errors.New("value out of range")
)
