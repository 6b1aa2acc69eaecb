package column

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

func TestNewService_RequiresStore(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store is required")
}

func TestList_SeedsDefaultsWhenEmpty(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	columns, err := svc.List(ctx)
	require.NoError(t, err)

	require.Len(t, columns, 4)
	assert.Equal(t, "backlog", columns[0].ID)
	assert.Equal(t, "todo", columns[1].ID)
	assert.Equal(t, "inProgress", columns[2].ID)
	assert.Equal(t, "done", columns[3].ID)
	for i, col := range columns {
		assert.Equal(t, i, col.Order)
	}
	assert.Equal(t, "slate", columns[0].Color)
	assert.Equal(t, "To Do", columns[1].Title)
	assert.Equal(t, 4, mem.Len(store.ColumnsKey))
}

func TestList_SecondCallDoesNotReseed(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	// Remove one default; a later list must not restore it.
	require.NoError(t, svc.Delete(ctx, "todo"))

	columns, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, columns, 3)
	assert.Equal(t, 3, mem.Len(store.ColumnsKey))
}

func TestList_SortedByOrder(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	// Insert out of order, bypassing Create.
	require.NoError(t, mem.HSet(ctx, store.ColumnsKey, "c", `{"id":"c","title":"C","color":"red","order":7}`))
	require.NoError(t, mem.HSet(ctx, store.ColumnsKey, "a", `{"id":"a","title":"A","color":"blue","order":1}`))
	require.NoError(t, mem.HSet(ctx, store.ColumnsKey, "b", `{"id":"b","title":"B","color":"lime","order":3}`))

	columns, err := svc.List(ctx)
	require.NoError(t, err)

	require.Len(t, columns, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{columns[0].ID, columns[1].ID, columns[2].ID})
}

func TestCreate_OrderIncrements(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.List(ctx) // seed, max order 3
	require.NoError(t, err)

	first, err := svc.Create(ctx, &CreateRequest{Title: "QA"})
	require.NoError(t, err)
	assert.Equal(t, 4, first.Order)

	second, err := svc.Create(ctx, &CreateRequest{Title: "Review"})
	require.NoError(t, err)
	assert.Equal(t, 5, second.Order)

	third, err := svc.Create(ctx, &CreateRequest{Title: "Ship"})
	require.NoError(t, err)
	assert.Equal(t, 6, third.Order)
}

func TestCreate_OrderFromSurvivingMax(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.List(ctx) // seed, done has order 3
	require.NoError(t, err)

	top, err := svc.Create(ctx, &CreateRequest{Title: "QA"})
	require.NoError(t, err)
	assert.Equal(t, 4, top.Order)

	// Deleting the max-order column makes the next create compute from
	// the remaining max, not the deleted one.
	require.NoError(t, svc.Delete(ctx, top.ID))

	next, err := svc.Create(ctx, &CreateRequest{Title: "Review"})
	require.NoError(t, err)
	assert.Equal(t, 4, next.Order)
}

func TestCreate_EmptyCollection(t *testing.T) {
	svc, _ := newTestService(t)

	col, err := svc.Create(context.Background(), &CreateRequest{Title: "Solo"})
	require.NoError(t, err)
	assert.Equal(t, 1, col.Order)
}

func TestCreate_DefaultsColor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plain, err := svc.Create(ctx, &CreateRequest{Title: "QA"})
	require.NoError(t, err)
	assert.Equal(t, DefaultColor, plain.Color)

	colored, err := svc.Create(ctx, &CreateRequest{Title: "Review", Color: "violet"})
	require.NoError(t, err)
	assert.Equal(t, "violet", colored.Color)
}

func TestDelete_AbsentIDSucceeds(t *testing.T) {
	svc, _ := newTestService(t)
	assert.NoError(t, svc.Delete(context.Background(), "never-existed"))
}

func TestDelete_MissingID(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrMissingID)
}

func TestList_StoreError(t *testing.T) {
	svc, mem := newTestService(t)
	mem.FailWith = errors.New("connection refused")

	_, err := svc.List(context.Background())
	require.Error(t, err)
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette, 18)
	assert.Equal(t, DefaultColor, Palette[0])
}
