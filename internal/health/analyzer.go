package health

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/workstream/internal/domain"
)

// Default thresholds, tunable per team cadence via config.
const (
	DefaultLongRunningDays = 7
	DefaultInactivityDays  = 3
)

// Thresholds configures the risk classification rules.
type Thresholds struct {
	// LongRunningDays is the age, in whole days, at which an unfinished
	// task counts as long-running.
	LongRunningDays int

	// InactivityDays is the time since last update, in whole days, at
	// which an unfinished task counts as inactive.
	InactivityDays int
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LongRunningDays: DefaultLongRunningDays,
		InactivityDays:  DefaultInactivityDays,
	}
}

// TaskHealth holds the derived metrics for a single task at a single
// point in time.
type TaskHealth struct {
	TaskID         uuid.UUID `json:"task_id"`
	AgeDays        int       `json:"age_days"`
	AgeHours       int       `json:"age_hours"`
	InactivityDays int       `json:"inactivity_days"`
	LongRunning    bool      `json:"long_running"`
	Blocked        bool      `json:"blocked"`
	AtRisk         bool      `json:"at_risk"`
}

// Evaluate computes the derived metrics for one task as of now.
//
// A task is long-running when it is not completed and its age has reached
// LongRunningDays. It is at risk when ANY of the following hold: it is
// blocked, it is long-running, or it has seen no update for at least
// InactivityDays while not completed. The conditions are a plain boolean
// OR; there is no precedence among them.
func Evaluate(task domain.Task, now time.Time, th Thresholds) TaskHealth {
	ageDays := wholeDays(now.Sub(task.CreatedAt))
	inactivityDays := wholeDays(now.Sub(task.UpdatedAt))
	open := task.Status != domain.StatusCompleted

	blocked := task.Status == domain.StatusBlocked
	longRunning := open && ageDays >= th.LongRunningDays
	inactive := open && inactivityDays >= th.InactivityDays

	return TaskHealth{
		TaskID:         task.ID,
		AgeDays:        ageDays,
		AgeHours:       wholeHours(now.Sub(task.CreatedAt)),
		InactivityDays: inactivityDays,
		LongRunning:    longRunning,
		Blocked:        blocked,
		AtRisk:         blocked || inactive || longRunning,
	}
}

// EvaluateAll computes metrics for every task in the snapshot, preserving
// snapshot order.
func EvaluateAll(tasks []domain.Task, now time.Time, th Thresholds) []TaskHealth {
	metrics := make([]TaskHealth, len(tasks))
	for i, task := range tasks {
		metrics[i] = Evaluate(task, now, th)
	}
	return metrics
}

// wholeDays converts a duration to whole days, clamping negatives (a
// record stamped "just now" can read marginally ahead of the caller's
// clock) to zero.
func wholeDays(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

func wholeHours(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Hour)
}

// sameDay reports whether t falls on the same calendar date as now, in
// now's location. "Today" is always the caller's today, never a hardcoded
// timezone.
func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
