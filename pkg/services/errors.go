package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when an operation conflicts with the entity's
	// current state.
	ErrConflict = errors.New("conflicting state")

	// ErrTaskTerminal is returned when mutating a completed, failed, or
	// cancelled task.
	ErrTaskTerminal = fmt.Errorf("%w: task is terminal", ErrConflict)

	// ErrTaskInProgress is returned when deleting a task that is executing.
	ErrTaskInProgress = fmt.Errorf("%w: task is in progress", ErrConflict)
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
