// Package errs defines the error kinds surfaced to the user.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a rejected option value, output directory or URL.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound indicates that a referenced input file does not exist.
	ErrNotFound = errors.New("not found")
)

// Error carries a user-facing message and the kind it belongs to.
// Error() returns the message only, so it can be printed as is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the kind for errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// InvalidArgument builds an ErrInvalidArgument error with a formatted message.
func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds an ErrNotFound error with a formatted message.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}
