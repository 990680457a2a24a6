package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrSelfDeletion       = errors.New("cannot delete own account")
	ErrMissingFields      = errors.New("required user fields missing")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access denied")
)

// ConflictError reports a unique-field collision with an existing user.
// The field name appears verbatim in the client-facing message.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("User with this %s already exists", e.Field)
}

// ValidationError carries human-readable field validation messages that are
// surfaced to clients as an errors array.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
