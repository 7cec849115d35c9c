package api

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarityrx/clarity-server/internal/catalog"
	"github.com/clarityrx/clarity-server/internal/config"
	"github.com/clarityrx/clarity-server/internal/search"
	"github.com/clarityrx/clarity-server/internal/service"
	"github.com/clarityrx/clarity-server/internal/store"
)

// testServer wraps the API server with a humatest client.
type testServer struct {
	*Server
	api humatest.TestAPI
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWithConfig(t, &config.Config{
		Chat: config.ChatConfig{
			RateLimitPerMinute: 600,
			RateLimitBurst:     100,
		},
	})
}

func setupTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	st, err := store.New(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cat, err := catalog.NewService("", logger)
	require.NoError(t, err)

	index, err := search.NewDiaryIndex(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	services := &Services{
		Onboarding: service.NewOnboardingService(cat, st, logger),
		Diary:      service.NewDiaryService(st, cat, index, logger),
		Chat:       service.NewChatService(st, logger),
	}

	s := NewServer(cfg, st, cat, index, services, logger)

	return &testServer{Server: s, api: humatest.Wrap(t, s.api)}
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"database"`)
	assert.Contains(t, body, `"search"`)
	assert.Contains(t, body, `"catalog"`)
	// Empty search index degrades but never fails the health check.
	assert.Contains(t, body, `"status":"degraded"`)
}
