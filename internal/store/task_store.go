package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/workstream/internal/domain"
)

// TaskStore holds the session's task records in insertion order. A map
// indexes records by ID for lookup; the order slice preserves the sequence
// in which tasks were created or seeded.
//
// The host is single-threaded, but the mutex keeps the type safe should it
// ever be shared.
type TaskStore struct {
	mu    sync.RWMutex
	now   func() time.Time
	order []uuid.UUID
	tasks map[uuid.UUID]domain.Task
}

// New creates an empty TaskStore using the wall clock.
func New() *TaskStore {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty TaskStore with an injected clock. Tests
// use this to advance simulated time without sleeping.
func NewWithClock(now func() time.Time) *TaskStore {
	return &TaskStore{
		now:   now,
		tasks: make(map[uuid.UUID]domain.Task),
	}
}

// Create validates the given fields, assigns a fresh unique ID, stamps
// both timestamps with the current time, and appends the task. On
// validation failure no record is created.
func (s *TaskStore) Create(title, owner string, status domain.Status, description string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(title, owner, status, description, s.now())
	if err != nil {
		return domain.Task{}, err
	}

	s.insert(*task)
	return *task, nil
}

// Update applies a partial update to the task with the given ID. Only the
// fields present in the patch change; the resulting record is re-validated
// as a unit before it replaces the original, so a failed update leaves the
// stored record untouched. UpdatedAt is set to the current time on success.
func (s *TaskStore) Update(id uuid.UUID, patch domain.TaskUpdate) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, ErrTaskNotFound
	}

	updated, err := current.Apply(patch, s.now())
	if err != nil {
		return domain.Task{}, err
	}

	s.tasks[id] = updated
	return updated, nil
}

// Get returns a copy of the task with the given ID, or ErrTaskNotFound.
func (s *TaskStore) Get(id uuid.UUID) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// List returns the current snapshot of all tasks in insertion order. The
// returned slice holds copies; mutating it does not affect the store.
func (s *TaskStore) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks
}

// Len returns the number of tasks currently in the store.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Contains reports whether a task with the given ID is present.
func (s *TaskStore) Contains(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tasks[id]
	return ok
}

// Seed bulk-inserts already-validated tasks, preserving their ids and
// timestamps. Used to populate a session from an imported snapshot. Each
// task is validated again before insertion; a duplicate ID returns
// ErrDuplicateTaskID. Seeding is all-or-nothing: on any error the store is
// left as it was.
func (s *TaskStore) Seed(tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(tasks))
	for i := range tasks {
		if err := tasks[i].Validate(); err != nil {
			return err
		}
		if _, dup := s.tasks[tasks[i].ID]; dup {
			return ErrDuplicateTaskID
		}
		if _, dup := seen[tasks[i].ID]; dup {
			return ErrDuplicateTaskID
		}
		seen[tasks[i].ID] = struct{}{}
	}

	for _, task := range tasks {
		s.insert(task)
	}
	return nil
}

// Reset discards every task, returning the store to its initial empty
// state.
func (s *TaskStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.tasks = make(map[uuid.UUID]domain.Task)
}

// insert appends a task. Caller must hold the write lock and have checked
// ID uniqueness.
func (s *TaskStore) insert(task domain.Task) {
	s.order = append(s.order, task.ID)
	s.tasks[task.ID] = task
}
