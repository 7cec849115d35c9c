package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/domain"
)

func logTestDose(t *testing.T, ts *testServer, body map[string]any) domain.DoseLogEntry {
	t.Helper()

	resp := ts.api.Post("/api/v1/doses", body)
	require.Equal(t, http.StatusOK, resp.Code, "body: %s", resp.Body.String())

	var entry domain.DoseLogEntry
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entry))
	return entry
}

func doseBody(overrides map[string]any) map[string]any {
	body := map[string]any{
		"product_sku":     domain.SKUDeepRest,
		"desired_outcome": "sleep",
		"quick_rating":    4,
		"thumbs":          "up",
		"tags":            []string{"helped sleep"},
		"notes":           "woke up rested",
		"time_of_day":     "evening",
		"capsules_taken":  1,
		"taken_at":        "2026-08-25T21:30:00Z",
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func TestLogDose(t *testing.T) {
	ts := setupTestServer(t)

	entry := logTestDose(t, ts, doseBody(nil))

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Deep Rest", entry.ProductName)
	assert.Equal(t, 5.0, entry.TotalDoseMg)
	assert.Equal(t, "2026-08-25", entry.Date.Format("2006-01-02"))
}

func TestLogDose_UnknownSKU(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/doses", doseBody(map[string]any{"product_sku": "CRX-NOPE"}))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "VALIDATION")
}

func TestLogDose_BadTimestamp(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/doses", doseBody(map[string]any{"taken_at": "yesterday"}))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "taken_at")
}

func TestListHistory_FiltersAndOrder(t *testing.T) {
	ts := setupTestServer(t)

	logTestDose(t, ts, doseBody(map[string]any{"taken_at": "2026-08-25T21:30:00Z"}))
	logTestDose(t, ts, doseBody(map[string]any{"taken_at": "2026-08-28T22:00:00Z", "quick_rating": 5}))
	logTestDose(t, ts, doseBody(map[string]any{
		"product_sku":     domain.SKUCalmClarity,
		"desired_outcome": "calm",
		"time_of_day":     "morning",
		"taken_at":        "2026-08-26T09:00:00Z",
	}))

	resp := ts.api.Get("/api/v1/history")
	require.Equal(t, http.StatusOK, resp.Code)

	var body HistoryResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Entries, 3)
	assert.Equal(t, "2026-08-28", body.Entries[0].Date.Format("2006-01-02"), "most recent first")

	resp = ts.api.Get("/api/v1/history?sku=" + domain.SKUDeepRest + "&min_rating=5")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Entries, 1)
	assert.Equal(t, 5, body.Entries[0].QuickRating)
}

func TestListHistory_InvalidFilter(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/history?start_date=not-a-date")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "start_date")

	resp = ts.api.Get("/api/v1/history?outcome=euphoria")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetStats(t *testing.T) {
	ts := setupTestServer(t)

	// Saturday and Tuesday doses split the weekend/weekday averages.
	logTestDose(t, ts, doseBody(map[string]any{"taken_at": "2026-08-29T21:00:00Z", "quick_rating": 5}))
	logTestDose(t, ts, doseBody(map[string]any{"taken_at": "2026-08-25T21:00:00Z", "quick_rating": 3}))

	resp := ts.api.Get("/api/v1/stats")
	require.Equal(t, http.StatusOK, resp.Code)

	var stats domain.DiaryStats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))

	assert.Equal(t, 2, stats.TotalDoses)
	assert.Equal(t, 5.0, stats.WeekendAvg)
	assert.Equal(t, 3.0, stats.WeekdayAvg)
	require.Len(t, stats.FavoriteProducts, 1)
	assert.Equal(t, "Deep Rest", stats.FavoriteProducts[0].ProductName)
}

func TestGetStats_Empty(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/stats")
	require.Equal(t, http.StatusOK, resp.Code)

	var stats domain.DiaryStats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalDoses)
	assert.NotNil(t, stats.FavoriteProducts)
}

func TestSearchHistory(t *testing.T) {
	ts := setupTestServer(t)

	logTestDose(t, ts, doseBody(map[string]any{"notes": "slept through the night, felt rested"}))

	resp := ts.api.Get("/api/v1/history/search?q=rested")
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		Total uint64 `json:"total"`
		Hits  []struct {
			ProductName string `json:"product_name"`
		} `json:"hits"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, uint64(1), result.Total)
	assert.Equal(t, "Deep Rest", result.Hits[0].ProductName)
}

func TestSearchHistory_EmptyQuery(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/history/search")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
