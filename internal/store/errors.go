package store

import (
	"errors"
	"fmt"
)

// Common store errors.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrTaskNotFound indicates that the requested task does not exist in
	// the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrDuplicateTaskID indicates that a task with the same ID is already
	// present. Surfaces on snapshot seeding; Create generates its own ids
	// and never hits it.
	ErrDuplicateTaskID = fmt.Errorf("%w: task ID", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
