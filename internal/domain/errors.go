package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by storage, services and the HTTP layer. Storage
// wraps them with the entity and id; handlers map them to status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrNotConfigured is returned when a collaborator (messaging provider,
	// cron secret) is used without the credentials it needs.
	ErrNotConfigured = errors.New("not configured")
)

// FieldError describes a validation error for a specific field. Field uses
// the JSON name of the request attribute.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem of one input, so a caller
// can fix them all in one round trip.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

// HasField reports whether field is among the collected errors.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
