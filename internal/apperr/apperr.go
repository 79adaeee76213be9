// Package apperr defines the error type shared by all Stride packages.
package apperr

import "fmt"

// Error is a sentinel application error. Message may contain fmt verbs
// that are filled in with Fmt before the error is surfaced.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fmt fills in the message verbs and returns a copy of the error so that
// the original sentinel remains unmodified. The copy keeps the underlying
// error so errors.Is continues to match.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Err:     e.Err,
		Message: fmt.Sprintf(e.Message, args...),
	}
}
