package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workstream/internal/domain"
)

// fixedClock returns a clock function that always reads t, plus a way to
// advance it.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time {
	return c.t
}

func (c *fixedClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestStore(t *testing.T) (*TaskStore, *fixedClock) {
	t.Helper()
	clock := &fixedClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	return NewWithClock(clock.now), clock
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[uuid.UUID]struct{})
	for i := 0; i < 50; i++ {
		task, err := s.Create("Fix bug", "Alice", domain.StatusPlanned, "")
		require.NoError(t, err)
		_, dup := seen[task.ID]
		require.False(t, dup, "task ids must be pairwise distinct")
		seen[task.ID] = struct{}{}
	}
	assert.Equal(t, 50, s.Len())
}

func TestCreateValidationAddsNoRecord(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Create("", "Alice", domain.StatusPlanned, "")
	require.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Equal(t, 0, s.Len(), "failed create must not add a record")

	_, err = s.Create("Fix bug", "", domain.StatusPlanned, "")
	require.ErrorIs(t, err, domain.ErrEmptyOwner)
	assert.Equal(t, 0, s.Len())

	_, err = s.Create("Fix bug", "Alice", domain.Status("bogus"), "")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, 0, s.Len())
}

func TestCreateSetsTimestamps(t *testing.T) {
	s, clock := newTestStore(t)

	task, err := s.Create("Fix bug", "Alice", domain.StatusPlanned, "")
	require.NoError(t, err)
	assert.True(t, task.CreatedAt.Equal(clock.t), "CreatedAt should be the store clock's now")
	assert.True(t, task.UpdatedAt.Equal(task.CreatedAt))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		_, err := s.Create(title, "Alice", domain.StatusPlanned, "")
		require.NoError(t, err)
	}

	tasks := s.List()
	require.Len(t, tasks, 3)
	for i, title := range titles {
		assert.Equal(t, title, tasks[i].Title)
	}
}

func TestListReturnsCopies(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.Create("Fix bug", "Alice", domain.StatusPlanned, "")
	require.NoError(t, err)

	tasks := s.List()
	tasks[0].Title = "mutated"

	stored, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", stored.Title, "mutating the snapshot must not affect the store")
}

func TestUpdateNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Create("Fix bug", "Alice", domain.StatusPlanned, "")
	require.NoError(t, err)
	before := s.List()

	title := "new title"
	_, err = s.Update(uuid.New(), domain.TaskUpdate{Title: &title})
	require.ErrorIs(t, err, ErrTaskNotFound)
	assert.True(t, IsNotFoundError(err))
	assert.Equal(t, before, s.List(), "failed update must leave the store unchanged")
}

func TestUpdatePartialFields(t *testing.T) {
	s, clock := newTestStore(t)

	created, err := s.Create("Fix bug", "Alice", domain.StatusInProgress, "crash on save")
	require.NoError(t, err)

	clock.advance(2 * time.Hour)

	owner := "Bob"
	updated, err := s.Update(created.ID, domain.TaskUpdate{Owner: &owner})
	require.NoError(t, err)

	assert.Equal(t, "Bob", updated.Owner)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Status, updated.Status)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "CreatedAt is immutable")
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt), "created_at <= last_updated_at must hold")
}

func TestUpdateAllOrNothing(t *testing.T) {
	s, clock := newTestStore(t)

	created, err := s.Create("Fix bug", "Alice", domain.StatusInProgress, "")
	require.NoError(t, err)

	clock.advance(time.Hour)

	// Invalid resulting state: empty title alongside a valid owner change.
	empty := ""
	owner := "Bob"
	_, err = s.Update(created.ID, domain.TaskUpdate{Title: &empty, Owner: &owner})
	require.ErrorIs(t, err, domain.ErrValidation)

	stored, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored, "failed update must leave the original record byte-for-byte unchanged")
}

func TestSeedPreservesIDsAndRejectsDuplicates(t *testing.T) {
	s, clock := newTestStore(t)

	task, err := domain.NewTask("Imported", "Alice", domain.StatusPlanned, "", clock.now())
	require.NoError(t, err)

	require.NoError(t, s.Seed([]domain.Task{*task}))
	stored, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, stored.ID)

	// Same ID again: rejected, store unchanged.
	err = s.Seed([]domain.Task{*task})
	require.ErrorIs(t, err, ErrDuplicateTaskID)
	assert.True(t, IsDuplicateError(err))
	assert.Equal(t, 1, s.Len())
}

func TestSeedIsAllOrNothing(t *testing.T) {
	s, clock := newTestStore(t)

	good, err := domain.NewTask("Good", "Alice", domain.StatusPlanned, "", clock.now())
	require.NoError(t, err)
	bad := *good
	bad.ID = uuid.New()
	bad.Title = ""

	err = s.Seed([]domain.Task{*good, bad})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, s.Len(), "a bad task must abort the whole seed")
}

func TestReset(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Create("Fix bug", "Alice", domain.StatusPlanned, "")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

func TestContains(t *testing.T) {
	s, _ := newTestStore(t)

	task, err := s.Create("Fix bug", "Alice", domain.StatusPlanned, "")
	require.NoError(t, err)

	assert.True(t, s.Contains(task.ID))
	assert.False(t, s.Contains(uuid.New()))
}
