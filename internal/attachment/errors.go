package attachment

import "errors"

// Errors returned when a picked file cannot be attached.
var (
	ErrMissingName = errors.New("file name is required")
	ErrEmptyFile   = errors.New("file is empty")
	ErrNotImage    = errors.New("file is not an image")
)
