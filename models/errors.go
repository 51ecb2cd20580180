package models

import "errors"

// ErrNotFound is returned when an operation references a nonexistent issue
// or user. Callers must not assume partial effects occurred.
var ErrNotFound = errors.New("resource not found")

// ValidationError reports a missing or malformed required field. It is
// surfaced to the caller for correction and never retried automatically.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
