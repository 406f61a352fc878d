package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errTitleRequired       = errors.New("survey title is required")
	errQuestionRequired    = errors.New("question is required")
	errOptionTitleRequired = errors.New("option title is required")
	errVinoksInvalid       = errors.New("vinoks must be a whole number")
	errImageNotFound       = errors.New("image file not found")
	errImageIsDirectory    = errors.New("image path is a directory")
)
