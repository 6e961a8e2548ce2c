package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a task.
type Status string

// Possible task status values, in declaration (display) order.
const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusCompleted  Status = "Completed"
)

// Statuses returns every valid status in declaration order. Aggregations
// iterate this slice so statuses with no tasks still appear with a zero
// count.
func Statuses() []Status {
	return []Status{StatusPlanned, StatusInProgress, StatusBlocked, StatusCompleted}
}

// ParseStatus converts a raw label into a Status. It trims surrounding
// whitespace but is otherwise exact: the enumeration is closed, so any
// other label returns ErrInvalidStatus.
func ParseStatus(label string) (Status, error) {
	s := Status(strings.TrimSpace(label))
	if !isValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Task represents a single tracked unit of work. Tasks live only in the
// in-memory store for the duration of a session; ID and CreatedAt are set
// at creation and never change afterwards.
type Task struct {
	ID          uuid.UUID `json:"task_id"`
	Title       string    `json:"title"`
	Owner       string    `json:"owner"`
	Status      Status    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"last_updated_at"`
}

// NewTask creates a new Task with the given fields. It generates a fresh
// UUID, trims all text fields, and sets both timestamps to now.
// Returns an error if validation fails; no partial task is produced.
func NewTask(title, owner string, status Status, description string, now time.Time) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Owner:       strings.TrimSpace(owner),
		Status:      status,
		Description: strings.TrimSpace(description),
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrNilTaskID
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	if t.Owner == "" {
		return ErrEmptyOwner
	}

	if !isValidStatus(t.Status) {
		return ErrInvalidStatus
	}

	if t.UpdatedAt.Before(t.CreatedAt) {
		return ErrTimestampOrder
	}

	return nil
}

// TaskUpdate is an optional-field patch for an existing task. A nil field
// means "leave unchanged"; a non-nil field means "set to this value". The
// patch is validated as a unit by Apply, so a bad field never produces a
// partially updated task.
type TaskUpdate struct {
	Title       *string
	Owner       *string
	Status      *Status
	Description *string
}

// IsZero reports whether the patch would change nothing.
func (u TaskUpdate) IsZero() bool {
	return u.Title == nil && u.Owner == nil && u.Status == nil && u.Description == nil
}

// Apply returns a copy of the task with the patch applied and UpdatedAt
// set to now. The receiver is never modified: if the patched task fails
// validation, the error is returned and the original record stands.
func (t Task) Apply(patch TaskUpdate, now time.Time) (Task, error) {
	updated := t

	if patch.Title != nil {
		updated.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Owner != nil {
		updated.Owner = strings.TrimSpace(*patch.Owner)
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Description != nil {
		updated.Description = strings.TrimSpace(*patch.Description)
	}

	updated.UpdatedAt = now.UTC()

	if err := updated.Validate(); err != nil {
		return Task{}, err
	}

	return updated, nil
}

// isValidStatus checks if the given status is a member of the closed
// enumeration.
func isValidStatus(status Status) bool {
	switch status {
	case StatusPlanned, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	default:
		return false
	}
}
