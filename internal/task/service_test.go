package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/boardd/internal/store"
)

func newTestService(t *testing.T) (Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc, err := NewService(mem, nil)
	require.NoError(t, err)
	return svc, mem
}

func strptr(s string) *string      { return &s }
func prioptr(p Priority) *Priority { return &p }

func TestNewService_RequiresStore(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store is required")
}

func TestCreate_GeneratesIDAndDefaultsColumn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateRequest{
		Title:       "Fix bug",
		Description: "notes",
		Priority:    PriorityHigh,
		Assignee:    "Alex",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Fix bug", created.Title)
	assert.Equal(t, "notes", created.Description)
	assert.Equal(t, PriorityHigh, created.Priority)
	assert.Equal(t, "Alex", created.Assignee)
	assert.Equal(t, DefaultColumnID, created.ColumnID)
}

func TestCreate_KeepsExplicitColumn(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), &CreateRequest{
		Title:    "Deploy",
		Priority: PriorityLow,
		ColumnID: "done",
	})
	require.NoError(t, err)
	assert.Equal(t, "done", created.ColumnID)
}

func TestCreate_UniqueIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, &CreateRequest{Title: "a"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, &CreateRequest{Title: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestList_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateRequest{
		Title:       "Fix bug",
		Description: "repro in prod",
		Priority:    PriorityMedium,
		Assignee:    "Jordan",
		ColumnID:    "todo",
	})
	require.NoError(t, err)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, *created, tasks[0])
}

func TestList_StoreError(t *testing.T) {
	svc, mem := newTestService(t)
	mem.FailWith = errors.New("connection refused")

	_, err := svc.List(context.Background())
	require.Error(t, err)
}

func TestList_SkipsUndecodableRecords(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateRequest{Title: "good"})
	require.NoError(t, err)
	require.NoError(t, mem.HSet(ctx, store.TasksKey, "bad", "{not json"))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestUpdate_MergesOnlySuppliedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateRequest{
		Title:       "Fix bug",
		Description: "notes",
		Priority:    PriorityLow,
		Assignee:    "Sam",
		ColumnID:    "todo",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &UpdateRequest{
		ID:       created.ID,
		Title:    strptr("Fix bug properly"),
		Priority: prioptr(PriorityHigh),
	})
	require.NoError(t, err)

	assert.Equal(t, "Fix bug properly", updated.Title)
	assert.Equal(t, PriorityHigh, updated.Priority)
	// Untouched fields preserved.
	assert.Equal(t, "notes", updated.Description)
	assert.Equal(t, "Sam", updated.Assignee)
	assert.Equal(t, "todo", updated.ColumnID)

	// Persisted, not just returned.
	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, *updated, tasks[0])
}

func TestUpdate_CanClearFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateRequest{Title: "t", Description: "d"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &UpdateRequest{
		ID:          created.ID,
		Description: strptr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Description)
	assert.Equal(t, "t", updated.Title)
}

func TestUpdate_MissingID(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Update(context.Background(), &UpdateRequest{})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Update(context.Background(), &UpdateRequest{ID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateRequest{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Second delete of the same id reports not-found.
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestDelete_MissingID(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrMissingID)
}
