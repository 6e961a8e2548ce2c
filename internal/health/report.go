package health

import (
	"sort"
	"time"

	"github.com/phrazzld/workstream/internal/domain"
)

// StatusCount is the number of tasks holding one status value.
type StatusCount struct {
	Status domain.Status `json:"status"`
	Count  int           `json:"count"`
}

// OwnerLoad is the number of unfinished tasks assigned to one owner.
type OwnerLoad struct {
	Owner string `json:"owner"`
	Open  int    `json:"open"`
}

// Report aggregates the health of an entire snapshot, the shape the
// dashboard widgets consume.
type Report struct {
	Total       int           `json:"total"`
	Blocked     int           `json:"blocked"`
	AtRisk      int           `json:"at_risk"`
	LongRunning int           `json:"long_running"`
	ByStatus    []StatusCount `json:"by_status"`
	ByOwner     []OwnerLoad   `json:"by_owner"`
}

// Summarize computes the aggregate report for a snapshot as of now.
//
// ByStatus covers every enumeration member in declaration order, with
// zero counts for statuses no task holds, so its counts always sum to
// Total. ByOwner counts non-completed tasks per distinct owner and is
// sorted alphabetically for deterministic display.
func Summarize(tasks []domain.Task, now time.Time, th Thresholds) Report {
	report := Report{Total: len(tasks)}

	statusCounts := make(map[domain.Status]int, len(domain.Statuses()))
	ownerOpen := make(map[string]int)

	for _, task := range tasks {
		statusCounts[task.Status]++
		if task.Status != domain.StatusCompleted {
			ownerOpen[task.Owner]++
		}

		m := Evaluate(task, now, th)
		if m.Blocked {
			report.Blocked++
		}
		if m.AtRisk {
			report.AtRisk++
		}
		if m.LongRunning {
			report.LongRunning++
		}
	}

	for _, status := range domain.Statuses() {
		report.ByStatus = append(report.ByStatus, StatusCount{
			Status: status,
			Count:  statusCounts[status],
		})
	}

	owners := make([]string, 0, len(ownerOpen))
	for owner := range ownerOpen {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	for _, owner := range owners {
		report.ByOwner = append(report.ByOwner, OwnerLoad{Owner: owner, Open: ownerOpen[owner]})
	}

	return report
}

// DailySummary holds the counts for a stand-up report on one calendar day.
type DailySummary struct {
	Date           time.Time `json:"date"`
	Total          int       `json:"total"`
	CreatedToday   int       `json:"created_today"`
	CompletedToday int       `json:"completed_today"`
	AtRisk         int       `json:"at_risk"`
	Blocked        int       `json:"blocked"`
	ActiveOwners   int       `json:"active_owners"`
}

// Daily computes the stand-up summary for the calendar date of now, in
// now's location. A task counts as completed today when its status is
// Completed and its last update falls on today's date.
func Daily(tasks []domain.Task, now time.Time, th Thresholds) DailySummary {
	summary := DailySummary{
		Date:  now,
		Total: len(tasks),
	}

	owners := make(map[string]struct{})
	for _, task := range tasks {
		owners[task.Owner] = struct{}{}

		if sameDay(task.CreatedAt, now) {
			summary.CreatedToday++
		}
		if task.Status == domain.StatusCompleted && sameDay(task.UpdatedAt, now) {
			summary.CompletedToday++
		}

		m := Evaluate(task, now, th)
		if m.AtRisk {
			summary.AtRisk++
		}
		if m.Blocked {
			summary.Blocked++
		}
	}
	summary.ActiveOwners = len(owners)

	return summary
}
