package survey

import "errors"

// ErrUnknownStepKind is returned when a step type name is not recognized.
var ErrUnknownStepKind = errors.New("unknown step type")
