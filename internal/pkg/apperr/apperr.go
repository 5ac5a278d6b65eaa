// Package apperr defines the error taxonomy shared by all service modules.
// Handlers map these to the uniform JSON error envelope; no raw database
// error ever crosses the request boundary.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a resource does not exist under the caller's
// ownership chain. Resources owned by someone else yield the same error, so
// a caller can never distinguish "absent" from "not yours".
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a unique field (username, email) is already taken.
var ErrConflict = errors.New("conflict")

// ErrInvalidCredentials is returned on a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a malformed, missing, or out-of-range input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for the given field.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Conflictf wraps ErrConflict with a human-readable message.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrConflict}, args...)...)
}
