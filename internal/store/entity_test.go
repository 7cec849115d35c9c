package store_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/store"
)

type testRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func testEntity(s *store.Store) *store.Entity[testRecord] {
	return store.NewEntity[testRecord](s, "test:", func(r *testRecord) string { return r.ID }).
		WithIndex("group", func(r *testRecord) []string { return []string{r.Group} })
}

func TestEntity_CreateAndGet(t *testing.T) {
	s := setupTestStore(t)
	entity := testEntity(s)

	rec := &testRecord{ID: "1", Name: "first", Group: "a"}
	require.NoError(t, entity.Create(context.Background(), rec))

	got, err := entity.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestEntity_Create_DuplicateID(t *testing.T) {
	s := setupTestStore(t)
	entity := testEntity(s)

	rec := &testRecord{ID: "1", Name: "first", Group: "a"}
	require.NoError(t, entity.Create(context.Background(), rec))

	err := entity.Create(context.Background(), rec)
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestEntity_Get_NotFound(t *testing.T) {
	s := setupTestStore(t)
	entity := testEntity(s)

	_, err := entity.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEntity_ListByIndex_NonUnique(t *testing.T) {
	s := setupTestStore(t)
	entity := testEntity(s)
	ctx := context.Background()

	for i := range 5 {
		group := "a"
		if i >= 3 {
			group = "b"
		}
		rec := &testRecord{ID: fmt.Sprintf("%d", i), Name: fmt.Sprintf("rec-%d", i), Group: group}
		require.NoError(t, entity.Create(ctx, rec))
	}

	groupA, err := entity.ListByIndex(ctx, "group", "a")
	require.NoError(t, err)
	assert.Len(t, groupA, 3)

	groupB, err := entity.ListByIndex(ctx, "group", "b")
	require.NoError(t, err)
	assert.Len(t, groupB, 2)

	empty, err := entity.ListByIndex(ctx, "group", "c")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEntity_Delete_RemovesIndexKeys(t *testing.T) {
	s := setupTestStore(t)
	entity := testEntity(s)
	ctx := context.Background()

	rec := &testRecord{ID: "1", Name: "first", Group: "a"}
	require.NoError(t, entity.Create(ctx, rec))
	require.NoError(t, entity.Delete(ctx, "1"))

	_, err := entity.Get(ctx, "1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	byGroup, err := entity.ListByIndex(ctx, "group", "a")
	require.NoError(t, err)
	assert.Empty(t, byGroup)

	// Idempotent
	assert.NoError(t, entity.Delete(ctx, "1"))
}

func TestEntity_AllAndCount(t *testing.T) {
	s := setupTestStore(t)
	entity := testEntity(s)
	ctx := context.Background()

	for i := range 4 {
		rec := &testRecord{ID: fmt.Sprintf("%d", i), Name: "rec", Group: "a"}
		require.NoError(t, entity.Create(ctx, rec))
	}

	all, err := entity.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	count, err := entity.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestEntity_ContextCancellation(t *testing.T) {
	s := setupTestStore(t)
	entity := testEntity(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := entity.Create(ctx, &testRecord{ID: "1"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = entity.Get(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}
