package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clarityrx/clarity-server/internal/catalog"
	"github.com/clarityrx/clarity-server/internal/domain"
	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
	"github.com/clarityrx/clarity-server/internal/id"
	"github.com/clarityrx/clarity-server/internal/search"
	"github.com/clarityrx/clarity-server/internal/store"
)

// DiaryService owns the dose diary: logging, filtered history, the
// personal stats summary, and free-text search.
type DiaryService struct {
	store   *store.Store
	catalog *catalog.Service
	index   *search.DiaryIndex
	logger  *slog.Logger
}

// NewDiaryService creates a new diary service.
func NewDiaryService(store *store.Store, catalog *catalog.Service, index *search.DiaryIndex, logger *slog.Logger) *DiaryService {
	return &DiaryService{
		store:   store,
		catalog: catalog,
		index:   index,
		logger:  logger,
	}
}

// LogDoseRequest carries a new diary entry from the logging form.
type LogDoseRequest struct {
	ProductSKU     string
	DesiredOutcome domain.Effect
	QuickRating    int
	Thumbs         domain.Thumbs
	Tags           []string
	Notes          string
	TimeOfDay      domain.TimeOfDay
	CapsulesTaken  int
	WithFood       bool
	WithAlcohol    bool
	TakenAt        time.Time
}

// LogDose validates and stores a diary entry, denormalizing the product
// name and computing the total dose from the catalog entry.
func (s *DiaryService) LogDose(ctx context.Context, req LogDoseRequest) (*domain.DoseLogEntry, error) {
	product, ok := s.catalog.BySKU(req.ProductSKU)
	if !ok {
		return nil, domainerrors.Validation(fmt.Sprintf("unknown product SKU %q", req.ProductSKU))
	}

	details := map[string]string{}
	if req.QuickRating < 1 || req.QuickRating > 5 {
		details["quick_rating"] = "must be between 1 and 5"
	}
	if !req.DesiredOutcome.Valid() {
		details["desired_outcome"] = "must be one of: sleep, calm, relief, focus"
	}
	if !req.Thumbs.Valid() {
		details["thumbs"] = "must be up, down, or omitted"
	}
	if !req.TimeOfDay.Valid() {
		details["time_of_day"] = "must be one of: morning, afternoon, evening, night"
	}
	if req.CapsulesTaken < 1 {
		details["capsules_taken"] = "must be at least 1"
	}
	if len(details) > 0 {
		return nil, domainerrors.ValidationWithDetails("invalid dose log", details)
	}

	takenAt := req.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}

	entryID, err := id.Generate("dose")
	if err != nil {
		return nil, domainerrors.Internal("failed to generate dose id").WithCause(err)
	}

	entry := &domain.DoseLogEntry{
		ID:             entryID,
		Date:           domain.UTCDate(takenAt),
		TakenAt:        takenAt,
		ProductSKU:     product.SKU,
		ProductName:    product.Name,
		DesiredOutcome: req.DesiredOutcome,
		QuickRating:    req.QuickRating,
		Thumbs:         req.Thumbs,
		Tags:           req.Tags,
		Notes:          req.Notes,
		TimeOfDay:      req.TimeOfDay,
		CapsulesTaken:  req.CapsulesTaken,
		TotalDoseMg:    product.THCMgPerCapsule * float64(req.CapsulesTaken),
		WithFood:       req.WithFood,
		WithAlcohol:    req.WithAlcohol,
		CreatedAt:      time.Now().UTC(),
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	if err := s.store.DoseLogs.Create(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.index.Index(entry); err != nil {
		// The entry is stored; a stale index is the lesser failure.
		s.logger.Warn("failed to index dose log", "id", entry.ID, "error", err)
	}

	s.logger.Info("dose logged",
		"id", entry.ID,
		"sku", entry.ProductSKU,
		"rating", entry.QuickRating,
	)
	return entry, nil
}

// History returns diary entries matching the filter, most recent first.
func (s *DiaryService) History(ctx context.Context, filter domain.HistoryFilter) ([]*domain.DoseLogEntry, error) {
	return s.store.ListDoseHistory(ctx, filter)
}

// Stats computes the personal stats summary over the filtered history.
func (s *DiaryService) Stats(ctx context.Context, filter domain.HistoryFilter) (domain.DiaryStats, error) {
	entries, err := s.store.ListDoseHistory(ctx, filter)
	if err != nil {
		return domain.DiaryStats{}, err
	}

	deref := make([]domain.DoseLogEntry, len(entries))
	for i, e := range entries {
		deref[i] = *e
	}
	return domain.BuildStats(deref), nil
}

// Search runs a free-text query over the diary.
func (s *DiaryService) Search(ctx context.Context, query string, limit int) (*search.Result, error) {
	if query == "" {
		return nil, domainerrors.Validation("search query must not be empty")
	}
	return s.index.Search(ctx, query, limit)
}

// RebuildIndex reloads the search index from the store. Called once at
// startup so seeded history is searchable.
func (s *DiaryService) RebuildIndex(ctx context.Context) error {
	entries, err := s.store.DoseLogs.All(ctx)
	if err != nil {
		return err
	}
	return s.index.Rebuild(entries)
}
