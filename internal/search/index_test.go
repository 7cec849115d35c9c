package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/domain"
)

func testIndex(t *testing.T) *DiaryIndex {
	t.Helper()
	idx, err := NewDiaryIndex(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func diaryEntry(id, name string, tags []string, notes string) *domain.DoseLogEntry {
	return &domain.DoseLogEntry{
		ID:             id,
		Date:           time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		ProductSKU:     domain.SKUDeepRest,
		ProductName:    name,
		DesiredOutcome: domain.EffectSleep,
		QuickRating:    4,
		Tags:           tags,
		Notes:          notes,
	}
}

func TestDiaryIndex_SearchTags(t *testing.T) {
	idx := testIndex(t)

	require.NoError(t, idx.Index(diaryEntry("dose-1", "Deep Rest", []string{"felt groggy"}, "")))
	require.NoError(t, idx.Index(diaryEntry("dose-2", "Calm Clarity", []string{"perfect dose"}, "")))

	res, err := idx.Search(context.Background(), "groggy", 10)
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "dose-1", res.Hits[0].ID)
	assert.Equal(t, "Deep Rest", res.Hits[0].ProductName)
	assert.Equal(t, "2026-08-25", res.Hits[0].Date)
}

func TestDiaryIndex_SearchNotes(t *testing.T) {
	idx := testIndex(t)

	require.NoError(t, idx.Index(diaryEntry("dose-1", "Deep Rest", nil, "Great night of sleep, woke up rested without a heavy head.")))
	require.NoError(t, idx.Index(diaryEntry("dose-2", "Deep Rest", nil, "Felt almost nothing at this dose.")))

	res, err := idx.Search(context.Background(), "rested", 10)
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.Equal(t, "dose-1", res.Hits[0].ID)
}

func TestDiaryIndex_SearchProductName(t *testing.T) {
	idx := testIndex(t)

	require.NoError(t, idx.Index(diaryEntry("dose-1", "Focus Crisp", nil, "")))
	require.NoError(t, idx.Index(diaryEntry("dose-2", "Deep Rest", nil, "")))

	res, err := idx.Search(context.Background(), "crisp", 10)
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "dose-1", res.Hits[0].ID)
}

func TestDiaryIndex_FuzzyMatch(t *testing.T) {
	idx := testIndex(t)

	require.NoError(t, idx.Index(diaryEntry("dose-1", "Deep Rest", []string{"felt groggy"}, "")))

	res, err := idx.Search(context.Background(), "grogy", 10)
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "dose-1", res.Hits[0].ID)
}

func TestDiaryIndex_RebuildAndCount(t *testing.T) {
	idx := testIndex(t)

	entries := []*domain.DoseLogEntry{
		diaryEntry("dose-1", "Deep Rest", []string{"helped sleep"}, ""),
		diaryEntry("dose-2", "Calm Clarity", []string{"too mild"}, ""),
		diaryEntry("dose-3", "Focus Crisp", nil, "great for reading"),
	}
	require.NoError(t, idx.Rebuild(entries))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestDiaryIndex_Delete(t *testing.T) {
	idx := testIndex(t)

	require.NoError(t, idx.Index(diaryEntry("dose-1", "Deep Rest", []string{"felt groggy"}, "")))
	require.NoError(t, idx.Delete("dose-1"))

	res, err := idx.Search(context.Background(), "groggy", 10)
	require.NoError(t, err)
	assert.Empty(t, res.Hits)
}
