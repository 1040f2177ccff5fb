package pagecheck

import (
	"errors"
	"fmt"
)

// ErrTimeoutExceeded is returned by Poll when the condition never evaluated
// true before the timeout elapsed. It is returned as-is, without wrapping.
var ErrTimeoutExceeded = errors.New("pagecheck: timed out waiting for condition")

// ErrNegativeDuration is wrapped by Poll when a timeout or poll interval
// override is negative.
var ErrNegativeDuration = errors.New("negative duration")

// ErrEmptyName is wrapped by Screenshot when the base name is empty.
var ErrEmptyName = errors.New("empty base name")

// Error reports a failed operation together with its cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pagecheck: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
