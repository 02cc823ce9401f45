package util

import (
	"errors"
	"strings"
)

// -----------------------------------------------------------------------------

type chainedError struct {
	message string
	err     error
}

// -----------------------------------------------------------------------------

// NewChainedError creates a new error that wraps an error and includes the given message.
func NewChainedError(err error, message string) error {
	return &chainedError{
		message: message,
		err:     err,
	}
}

// Error returns a string representation of the error.
func (w *chainedError) Error() string {
	sb := strings.Builder{}
	_, _ = sb.WriteString(w.message)
	for err := w.err; err != nil; {
		var childW *chainedError

		_, _ = sb.WriteString(" [err=")
		if errors.As(err, &childW) {
			_, _ = sb.WriteString(childW.message)
			err = childW.err
		} else {
			_, _ = sb.WriteString(err.Error())
			err = errors.Unwrap(err)
		}
		_, _ = sb.WriteString("]")
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (w *chainedError) Unwrap() error {
	return w.err
}
