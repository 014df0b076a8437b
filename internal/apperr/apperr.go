// Package apperr defines the error type shared across quiztimer packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with an optionally formatted message and an
// underlying cause.
type Error struct {
	Cause   error
	Message string
	Context []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf(e.Message, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is derived from the same error template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Message == e.Message
}

// Fmt returns a copy of the error with the message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: e.Message,
		Cause:   e.Cause,
		Context: args,
	}
}

// Wrap returns a copy of the error with err attached as the cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Context: e.Context,
		Cause:   err,
	}
}
