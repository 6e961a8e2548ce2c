package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a task fails validation.
	// All field-specific validation errors wrap this sentinel, so callers
	// can match the whole family with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle is returned when a task title is empty after trimming.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrEmptyOwner is returned when a task owner is empty after trimming.
	ErrEmptyOwner = fmt.Errorf("%w: owner cannot be empty", ErrValidation)

	// ErrInvalidStatus is returned when a status is not a member of the
	// closed enumeration.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrValidation)

	// ErrNilTaskID is returned when a task carries the zero UUID.
	ErrNilTaskID = fmt.Errorf("%w: task ID cannot be nil", ErrValidation)

	// ErrTimestampOrder is returned when a task's last update would
	// precede its creation time.
	ErrTimestampOrder = fmt.Errorf("%w: last update precedes creation", ErrValidation)
)

// IsValidationError checks if the error is any kind of validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
