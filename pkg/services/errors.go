package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no setting is stored for a domain
	ErrNotFound = errors.New("setting not found")

	// ErrAlreadyExists is returned when creating a setting for a domain
	// that already has one
	ErrAlreadyExists = errors.New("setting already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
