package export

import (
	"errors"
	"fmt"
)

// ErrNameCollision is returned by the reject policy when two distinct images
// share a file name.
var ErrNameCollision = errors.New("image file name collision")

// ErrUnknownCollisions is returned for an unknown collision policy name.
var ErrUnknownCollisions = errors.New("unknown collision policy")

// Error describes a failed export step.
type Error struct {
	Op  string // plan, encode, archive, write
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ee *Error
	if errors.As(err, &ee) {
		return err
	}
	return &Error{Op: op, Err: err}
}
