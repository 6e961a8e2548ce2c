// Package snapshot reads and writes the CSV interchange format for task
// records. A snapshot is the only way state crosses a session boundary:
// the store is ephemeral, and the user explicitly exports to or imports
// from a flat CSV file.
package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/workstream/internal/domain"
)

// Columns is the exact CSV header, matching the task attributes.
var Columns = []string{
	"task_id",
	"title",
	"owner",
	"status",
	"description",
	"created_at",
	"last_updated_at",
}

// Import-specific errors.
var (
	// ErrBadHeader is returned when the header row does not match Columns.
	ErrBadHeader = errors.New("snapshot header does not match expected columns")

	// ErrMalformedID is returned for a row whose task_id is present but
	// not a well-formed UUID.
	ErrMalformedID = errors.New("malformed task ID")

	// ErrDuplicateID is returned for a row whose task_id is already in
	// use, either by the live store or by an earlier row of the same file.
	ErrDuplicateID = errors.New("duplicate task ID")
)

// RowError reports a single rejected row. Line is 1-based and counts the
// header, matching what an editor shows for the file.
type RowError struct {
	Line int
	Err  error
}

// Error implements the error interface for RowError.
func (e RowError) Error() string {
	return fmt.Sprintf("row %d rejected: %v", e.Line, e.Err)
}

// Unwrap returns the underlying cause to support errors.Is/errors.As.
func (e RowError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of an import: the rows that passed validation
// and a per-row error for each that did not. Imports are partial-success
// by design; one bad row never aborts the rest of the file.
type Result struct {
	Tasks     []domain.Task
	RowErrors []RowError
}

// Write renders the tasks as CSV in store order, header first.
func Write(w io.Writer, tasks []domain.Task) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	for _, task := range tasks {
		record := []string{
			task.ID.String(),
			task.Title,
			task.Owner,
			string(task.Status),
			task.Description,
			task.CreatedAt.Format(time.RFC3339),
			task.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write task %s: %w", task.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read parses a CSV snapshot, re-validating every row with the same rules
// as task creation.
//
// ID policy: a row keeps its task_id when it is a well-formed UUID not
// already in use; a blank task_id gets a freshly generated one; a
// duplicate or malformed task_id rejects the row. The exists func reports
// ids already taken by the live store (nil means none are).
//
// Rows with blank timestamps get now for both; a last_updated_at earlier
// than created_at rejects the row. Rejected rows are reported in
// Result.RowErrors and parsing continues.
func Read(r io.Reader, now time.Time, exists func(uuid.UUID) bool) (Result, error) {
	if exists == nil {
		exists = func(uuid.UUID) bool { return false }
	}

	// The reader locks the field count to the header's, so short or long
	// data rows surface as per-row field-count errors below.
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return Result{}, fmt.Errorf("%w: empty file", ErrBadHeader)
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to read snapshot header: %w", err)
	}
	if !headerMatches(header) {
		return Result{}, ErrBadHeader
	}

	var result Result
	seen := make(map[uuid.UUID]struct{})
	line := 1

	for {
		line++
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Structural damage (wrong field count, bare quote) is a row
			// problem, not a file problem.
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Err: err})
			continue
		}

		task, err := parseRow(record, now, func(id uuid.UUID) bool {
			if _, dup := seen[id]; dup {
				return true
			}
			return exists(id)
		})
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Err: err})
			continue
		}

		seen[task.ID] = struct{}{}
		result.Tasks = append(result.Tasks, task)
	}

	return result, nil
}

// parseRow converts one CSV record into a validated task.
func parseRow(record []string, now time.Time, taken func(uuid.UUID) bool) (domain.Task, error) {
	rawID := strings.TrimSpace(record[0])

	var id uuid.UUID
	switch rawID {
	case "":
		id = uuid.New()
	default:
		parsed, err := uuid.Parse(rawID)
		if err != nil {
			return domain.Task{}, fmt.Errorf("%w: %q", ErrMalformedID, rawID)
		}
		if taken(parsed) {
			return domain.Task{}, fmt.Errorf("%w: %s", ErrDuplicateID, parsed)
		}
		id = parsed
	}

	status, err := domain.ParseStatus(record[3])
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %q", err, record[3])
	}

	createdAt, err := parseTimestamp(record[5], now)
	if err != nil {
		return domain.Task{}, fmt.Errorf("bad created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(record[6], now)
	if err != nil {
		return domain.Task{}, fmt.Errorf("bad last_updated_at: %w", err)
	}

	task := domain.Task{
		ID:          id,
		Title:       strings.TrimSpace(record[1]),
		Owner:       strings.TrimSpace(record[2]),
		Status:      status,
		Description: strings.TrimSpace(record[4]),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func parseTimestamp(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

func headerMatches(header []string) bool {
	if len(header) != len(Columns) {
		return false
	}
	for i, col := range Columns {
		if strings.TrimSpace(header[i]) != col {
			return false
		}
	}
	return true
}
