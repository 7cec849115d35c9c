package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/catalog"
	"github.com/clarityrx/clarity-server/internal/domain"
	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
	"github.com/clarityrx/clarity-server/internal/search"
	"github.com/clarityrx/clarity-server/internal/service"
	"github.com/clarityrx/clarity-server/internal/store"
)

func setupDiaryService(t *testing.T) (*service.DiaryService, *store.Store) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	cat, err := catalog.NewService("", nil)
	require.NoError(t, err)

	idx, err := search.NewDiaryIndex(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	return service.NewDiaryService(s, cat, idx, testLogger()), s
}

func validLogRequest() service.LogDoseRequest {
	return service.LogDoseRequest{
		ProductSKU:     domain.SKUDeepRest,
		DesiredOutcome: domain.EffectSleep,
		QuickRating:    4,
		Thumbs:         domain.ThumbsUp,
		Tags:           []string{"helped sleep"},
		TimeOfDay:      domain.TimeOfDayEvening,
		CapsulesTaken:  2,
		TakenAt:        time.Date(2026, 8, 25, 21, 30, 0, 0, time.UTC),
	}
}

func TestLogDose_DenormalizesProduct(t *testing.T) {
	svc, _ := setupDiaryService(t)

	entry, err := svc.LogDose(context.Background(), validLogRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Deep Rest", entry.ProductName)
	assert.Equal(t, 10.0, entry.TotalDoseMg, "2 capsules x 5 mg")
	assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), entry.Date)
}

func TestLogDose_UnknownSKU(t *testing.T) {
	svc, _ := setupDiaryService(t)

	req := validLogRequest()
	req.ProductSKU = "CRX-NOPE"

	_, err := svc.LogDose(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestLogDose_InvalidFields(t *testing.T) {
	svc, _ := setupDiaryService(t)

	tests := []struct {
		name   string
		mutate func(*service.LogDoseRequest)
	}{
		{"rating too low", func(r *service.LogDoseRequest) { r.QuickRating = 0 }},
		{"rating too high", func(r *service.LogDoseRequest) { r.QuickRating = 6 }},
		{"bad outcome", func(r *service.LogDoseRequest) { r.DesiredOutcome = "party" }},
		{"bad thumbs", func(r *service.LogDoseRequest) { r.Thumbs = "sideways" }},
		{"bad time of day", func(r *service.LogDoseRequest) { r.TimeOfDay = "midnightish" }},
		{"no capsules", func(r *service.LogDoseRequest) { r.CapsulesTaken = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLogRequest()
			tt.mutate(&req)

			_, err := svc.LogDose(context.Background(), req)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestHistory_FiltersAndOrder(t *testing.T) {
	svc, _ := setupDiaryService(t)
	ctx := context.Background()

	first := validLogRequest()
	_, err := svc.LogDose(ctx, first)
	require.NoError(t, err)

	second := validLogRequest()
	second.ProductSKU = domain.SKUCalmClarity
	second.DesiredOutcome = domain.EffectCalm
	second.QuickRating = 3
	second.Thumbs = domain.ThumbsNone
	second.TakenAt = second.TakenAt.AddDate(0, 0, 1)
	_, err = svc.LogDose(ctx, second)
	require.NoError(t, err)

	all, err := svc.History(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Calm Clarity", all[0].ProductName, "most recent first")

	sleepOnly, err := svc.History(ctx, domain.HistoryFilter{DesiredOutcome: domain.EffectSleep})
	require.NoError(t, err)
	require.Len(t, sleepOnly, 1)
	assert.Equal(t, domain.SKUDeepRest, sleepOnly[0].ProductSKU)

	tagged, err := svc.History(ctx, domain.HistoryFilter{Tag: "Helped Sleep"})
	require.NoError(t, err)
	assert.Len(t, tagged, 1)
}

func TestStats_OverFilteredHistory(t *testing.T) {
	svc, _ := setupDiaryService(t)
	ctx := context.Background()

	for _, rating := range []int{5, 4, 5} {
		req := validLogRequest()
		req.QuickRating = rating
		req.Thumbs = domain.ThumbsUp
		_, err := svc.LogDose(ctx, req)
		require.NoError(t, err)
	}
	low := validLogRequest()
	low.ProductSKU = domain.SKUCalmClarity
	low.DesiredOutcome = domain.EffectCalm
	low.QuickRating = 3
	low.Thumbs = domain.ThumbsNone
	_, err := svc.LogDose(ctx, low)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, domain.HistoryFilter{})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalDoses)
	require.Len(t, stats.FavoriteProducts, 1)
	assert.Equal(t, "Deep Rest", stats.FavoriteProducts[0].ProductName)
	assert.InDelta(t, 14.0/3.0, stats.FavoriteProducts[0].AvgRating, 1e-9)
}

func TestStats_Empty(t *testing.T) {
	svc, _ := setupDiaryService(t)

	stats, err := svc.Stats(context.Background(), domain.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, domain.DiaryStats{FavoriteProducts: []domain.FavoriteProduct{}}, stats)
}

func TestSearch_FindsLoggedDose(t *testing.T) {
	svc, _ := setupDiaryService(t)
	ctx := context.Background()

	req := validLogRequest()
	req.Tags = []string{"felt groggy"}
	entry, err := svc.LogDose(ctx, req)
	require.NoError(t, err)

	res, err := svc.Search(ctx, "groggy", 10)
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, entry.ID, res.Hits[0].ID)

	_, err = svc.Search(ctx, "", 10)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestRebuildIndex_FromStore(t *testing.T) {
	svc, s := setupDiaryService(t)
	ctx := context.Background()

	// Entry written directly to the store, bypassing the index.
	require.NoError(t, s.DoseLogs.Create(ctx, &domain.DoseLogEntry{
		ID:             "dose-direct",
		Date:           time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		TakenAt:        time.Date(2026, 8, 25, 21, 0, 0, 0, time.UTC),
		ProductSKU:     domain.SKUDeepRest,
		ProductName:    "Deep Rest",
		DesiredOutcome: domain.EffectSleep,
		QuickRating:    5,
		Tags:           []string{"perfect dose"},
	}))

	require.NoError(t, svc.RebuildIndex(ctx))

	res, err := svc.Search(ctx, "perfect", 10)
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "dose-direct", res.Hits[0].ID)
}
