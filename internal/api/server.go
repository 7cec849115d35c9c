// Package api provides the HTTP API server and handlers for the ClarityRx demo backend.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/clarityrx/clarity-server/internal/catalog"
	"github.com/clarityrx/clarity-server/internal/config"
	"github.com/clarityrx/clarity-server/internal/ratelimit"
	"github.com/clarityrx/clarity-server/internal/search"
	"github.com/clarityrx/clarity-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *store.Store
	catalog  *catalog.Service
	index    *search.DiaryIndex
	services *Services
	limiter  *ratelimit.KeyedRateLimiter
	router   *chi.Mux
	api      huma.API
	logger   *slog.Logger
}

// NewServer creates the HTTP server with all routes configured.
func NewServer(cfg *config.Config, st *store.Store, cat *catalog.Service, index *search.DiaryIndex, services *Services, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	rps := float64(cfg.Chat.RateLimitPerMinute) / 60.0

	s := &Server{
		store:    st,
		catalog:  cat,
		index:    index,
		services: services,
		limiter:  ratelimit.New(rps, cfg.Chat.RateLimitBurst),
		router:   router,
		logger:   logger,
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(s.rateLimitPaths("/api/v1/chat", "/api/v1/onboarding"))

	humaConfig := huma.DefaultConfig("ClarityRx API", "1.0.0")
	s.api = humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerProductRoutes()
	s.registerOnboardingRoutes()
	s.registerDiaryRoutes()
	s.registerChatRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
