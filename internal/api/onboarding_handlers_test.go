package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/config"
	"github.com/clarityrx/clarity-server/internal/domain"
	"github.com/clarityrx/clarity-server/internal/service"
)

func TestSubmitSurvey(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/onboarding", map[string]any{
		"age_range":    "60-plus",
		"primary_goal": "sleep",
		"experience":   "naive",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var rec service.Recommendation
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rec))

	assert.Equal(t, domain.SKUDeepRestMicro, rec.Product.SKU)
	assert.Equal(t, 2.5, rec.THCMg)
	assert.NotEmpty(t, rec.SurveyID)
	assert.Contains(t, rec.Explanation, "Deep Rest Micro")
}

func TestSubmitSurvey_RateLimited(t *testing.T) {
	ts := setupTestServerWithConfig(t, &config.Config{
		Chat: config.ChatConfig{
			RateLimitPerMinute: 1,
			RateLimitBurst:     2,
		},
	})

	body := map[string]any{
		"age_range":    "45-59",
		"primary_goal": "focus",
		"experience":   "light",
	}

	for range 2 {
		resp := ts.api.Post("/api/v1/onboarding", body)
		require.Equal(t, http.StatusOK, resp.Code)
	}

	resp := ts.api.Post("/api/v1/onboarding", body)
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Contains(t, resp.Body.String(), "RATE_LIMITED")
}

func TestSubmitSurvey_InvalidInput(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/onboarding", map[string]any{
		"age_range":    "12-17",
		"primary_goal": "sleep",
		"experience":   "naive",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, "VALIDATION")
	assert.Contains(t, body, "age_range")
}
