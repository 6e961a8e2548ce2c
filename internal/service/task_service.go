// Package service orchestrates the task store, health analyzer, and
// snapshot codec on behalf of the host. All failures here are input-level:
// the host displays them and the user corrects and re-submits.
package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/workstream/internal/domain"
	"github.com/phrazzld/workstream/internal/health"
	"github.com/phrazzld/workstream/internal/snapshot"
)

// TaskRepository defines the store interface the service layer needs.
type TaskRepository interface {
	// Create validates the fields and appends a fresh task
	Create(title, owner string, status domain.Status, description string) (domain.Task, error)

	// Update applies a partial update to an existing task
	Update(id uuid.UUID, patch domain.TaskUpdate) (domain.Task, error)

	// Get retrieves a task by its unique ID
	Get(id uuid.UUID) (domain.Task, error)

	// List returns the insertion-ordered snapshot of all tasks
	List() []domain.Task

	// Contains reports whether the given ID is taken
	Contains(id uuid.UUID) bool

	// Seed bulk-inserts validated tasks, preserving ids and timestamps
	Seed(tasks []domain.Task) error

	// Reset discards all tasks
	Reset()
}

// TaskService provides the operations the UI-event layer invokes.
type TaskService struct {
	repo       TaskRepository
	thresholds health.Thresholds
	now        func() time.Time
	logger     *slog.Logger
}

// NewTaskService creates a TaskService. A nil logger falls back to
// slog.Default.
func NewTaskService(repo TaskRepository, thresholds health.Thresholds, now func() time.Time, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &TaskService{
		repo:       repo,
		thresholds: thresholds,
		now:        now,
		logger:     logger,
	}
}

// CreateTask creates a new task from the given fields.
func (s *TaskService) CreateTask(title, owner string, status domain.Status, description string) (domain.Task, error) {
	task, err := s.repo.Create(title, owner, status, description)
	if err != nil {
		return domain.Task{}, NewTaskServiceError("create", "invalid task", err)
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"owner", task.Owner,
		"status", task.Status)
	return task, nil
}

// UpdateTask applies a quick update to an existing task.
func (s *TaskService) UpdateTask(id uuid.UUID, patch domain.TaskUpdate) (domain.Task, error) {
	task, err := s.repo.Update(id, patch)
	if err != nil {
		return domain.Task{}, NewTaskServiceError("update", "could not update task", err)
	}

	s.logger.Info("task updated",
		"task_id", task.ID,
		"status", task.Status)
	return task, nil
}

// GetTask retrieves a task by its ID.
func (s *TaskService) GetTask(id uuid.UUID) (domain.Task, error) {
	task, err := s.repo.Get(id)
	if err != nil {
		return domain.Task{}, NewTaskServiceError("get", "could not find task", err)
	}
	return task, nil
}

// ListTasks returns the current snapshot in insertion order.
func (s *TaskService) ListTasks() []domain.Task {
	return s.repo.List()
}

// Health evaluates per-task metrics for the current snapshot.
func (s *TaskService) Health() []health.TaskHealth {
	return health.EvaluateAll(s.repo.List(), s.now(), s.thresholds)
}

// Report computes the aggregate health report for the current snapshot.
func (s *TaskService) Report() health.Report {
	return health.Summarize(s.repo.List(), s.now(), s.thresholds)
}

// DailySummary computes the stand-up summary for the caller's today.
func (s *TaskService) DailySummary() health.DailySummary {
	return health.Daily(s.repo.List(), s.now(), s.thresholds)
}

// Export writes the current snapshot as CSV.
func (s *TaskService) Export(w io.Writer) error {
	tasks := s.repo.List()
	if err := snapshot.Write(w, tasks); err != nil {
		return NewTaskServiceError("export", "could not write snapshot", err)
	}

	s.logger.Debug("snapshot exported", "tasks", len(tasks))
	return nil
}

// Import reads a CSV snapshot into the store. Rows that fail validation
// are reported per-row and skipped; accepted rows are seeded with their
// ids and timestamps preserved. Returns the rejected rows alongside the
// count of accepted ones.
func (s *TaskService) Import(r io.Reader) (accepted int, rejected []snapshot.RowError, err error) {
	result, err := snapshot.Read(r, s.now(), s.repo.Contains)
	if err != nil {
		return 0, nil, NewTaskServiceError("import", "could not read snapshot", err)
	}

	if err := s.repo.Seed(result.Tasks); err != nil {
		return 0, result.RowErrors, NewTaskServiceError("import", "could not seed store", err)
	}

	for _, rowErr := range result.RowErrors {
		s.logger.Warn("snapshot row rejected", "line", rowErr.Line, "error", rowErr.Err)
	}
	s.logger.Info("snapshot imported",
		"accepted", len(result.Tasks),
		"rejected", len(result.RowErrors))

	return len(result.Tasks), result.RowErrors, nil
}

// Reset discards every task in the store.
func (s *TaskService) Reset() {
	s.repo.Reset()
	s.logger.Info("store reset")
}

// SeedDemo loads a small deterministic demo set, replacing the current
// store contents. Useful for demos and first-run exploration.
func (s *TaskService) SeedDemo() error {
	demo := []struct {
		title, owner, description string
		status                    domain.Status
	}{
		{"Implement auth stub", "Alice", "Placeholder for future auth integration", domain.StatusPlanned},
		{"Refactor data layer", "Bob", "Separate persistence adapter", domain.StatusInProgress},
		{"Fix flaky tests", "Carol", "Stabilize CI failures", domain.StatusBlocked},
		{"Improve dashboards", "Dana", "Add filters and summaries", domain.StatusInProgress},
		{"Ship v1", "Eve", "Cut scope and release", domain.StatusCompleted},
	}

	s.repo.Reset()
	for _, d := range demo {
		if _, err := s.repo.Create(d.title, d.owner, d.status, d.description); err != nil {
			return NewTaskServiceError("seed", "could not create demo task", err)
		}
	}

	s.logger.Info("demo data seeded", "tasks", len(demo))
	return nil
}
