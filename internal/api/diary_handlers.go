package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clarityrx/clarity-server/internal/domain"
	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
	"github.com/clarityrx/clarity-server/internal/search"
	"github.com/clarityrx/clarity-server/internal/service"
)

func (s *Server) registerDiaryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "logDose",
		Method:      http.MethodPost,
		Path:        "/api/v1/doses",
		Summary:     "Log dose",
		Description: "Records a dose diary entry",
		Tags:        []string{"Diary"},
	}, s.handleLogDose)

	huma.Register(s.api, huma.Operation{
		OperationID: "listHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/history",
		Summary:     "List dose history",
		Description: "Returns diary entries, most recent first, with optional filters",
		Tags:        []string{"Diary"},
	}, s.handleListHistory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "Get diary stats",
		Description: "Returns the personal stats summary over the filtered history",
		Tags:        []string{"Diary"},
	}, s.handleGetStats)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/search",
		Summary:     "Search dose history",
		Description: "Full-text search over diary notes, tags, and product names",
		Tags:        []string{"Diary"},
	}, s.handleSearchHistory)
}

// LogDoseBody is the request body for logging a dose.
type LogDoseBody struct {
	ProductSKU     string   `json:"product_sku" doc:"SKU of the product taken"`
	DesiredOutcome string   `json:"desired_outcome" doc:"Desired effect: sleep, calm, relief, or focus"`
	QuickRating    int      `json:"quick_rating" doc:"1-5 outcome rating"`
	Thumbs         string   `json:"thumbs,omitempty" doc:"Optional thumbs verdict: up or down"`
	Tags           []string `json:"tags,omitempty" doc:"Free-form context tags"`
	Notes          string   `json:"notes,omitempty" doc:"Free-form notes"`
	TimeOfDay      string   `json:"time_of_day" doc:"morning, afternoon, evening, or night"`
	CapsulesTaken  int      `json:"capsules_taken" doc:"Number of capsules taken"`
	WithFood       bool     `json:"with_food,omitempty" doc:"Taken with food"`
	WithAlcohol    bool     `json:"with_alcohol,omitempty" doc:"Taken with alcohol"`
	TakenAt        string   `json:"taken_at,omitempty" doc:"RFC 3339 timestamp, defaults to now"`
}

// LogDoseInput wraps the log dose request for Huma.
type LogDoseInput struct {
	Body LogDoseBody
}

// DoseLogOutput wraps a diary entry for Huma.
type DoseLogOutput struct {
	Body domain.DoseLogEntry
}

// HistoryFilterInput carries the shared history filter query parameters.
type HistoryFilterInput struct {
	SKU       string `query:"sku" doc:"Filter by product SKU"`
	Outcome   string `query:"outcome" doc:"Filter by desired outcome"`
	MinRating int    `query:"min_rating" doc:"Minimum quick rating"`
	MaxRating int    `query:"max_rating" doc:"Maximum quick rating"`
	StartDate string `query:"start_date" doc:"Inclusive start date (YYYY-MM-DD)"`
	EndDate   string `query:"end_date" doc:"Inclusive end date (YYYY-MM-DD)"`
	Tag       string `query:"tag" doc:"Filter by tag"`
}

// HistoryResponse contains the filtered diary history.
type HistoryResponse struct {
	Entries []*domain.DoseLogEntry `json:"entries" doc:"Diary entries, most recent first"`
}

// HistoryOutput wraps the history response for Huma.
type HistoryOutput struct {
	Body HistoryResponse
}

// StatsOutput wraps the diary stats for Huma.
type StatsOutput struct {
	Body domain.DiaryStats
}

// SearchHistoryInput contains parameters for searching the diary.
type SearchHistoryInput struct {
	Query string `query:"q" doc:"Search query"`
	Limit int    `query:"limit" doc:"Maximum hits to return (default 20)"`
}

// SearchOutput wraps the search result for Huma.
type SearchOutput struct {
	Body search.Result
}

func (s *Server) handleLogDose(ctx context.Context, input *LogDoseInput) (*DoseLogOutput, error) {
	var takenAt time.Time
	if input.Body.TakenAt != "" {
		parsed, err := time.Parse(time.RFC3339, input.Body.TakenAt)
		if err != nil {
			return nil, domainerrors.Validation(fmt.Sprintf("invalid taken_at timestamp %q", input.Body.TakenAt))
		}
		takenAt = parsed
	}

	entry, err := s.services.Diary.LogDose(ctx, service.LogDoseRequest{
		ProductSKU:     input.Body.ProductSKU,
		DesiredOutcome: domain.Effect(input.Body.DesiredOutcome),
		QuickRating:    input.Body.QuickRating,
		Thumbs:         domain.Thumbs(input.Body.Thumbs),
		Tags:           input.Body.Tags,
		Notes:          input.Body.Notes,
		TimeOfDay:      domain.TimeOfDay(input.Body.TimeOfDay),
		CapsulesTaken:  input.Body.CapsulesTaken,
		WithFood:       input.Body.WithFood,
		WithAlcohol:    input.Body.WithAlcohol,
		TakenAt:        takenAt,
	})
	if err != nil {
		return nil, err
	}

	return &DoseLogOutput{Body: *entry}, nil
}

func (s *Server) handleListHistory(ctx context.Context, input *HistoryFilterInput) (*HistoryOutput, error) {
	filter, err := input.toFilter()
	if err != nil {
		return nil, err
	}

	entries, err := s.services.Diary.History(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.DoseLogEntry{}
	}

	return &HistoryOutput{Body: HistoryResponse{Entries: entries}}, nil
}

func (s *Server) handleGetStats(ctx context.Context, input *HistoryFilterInput) (*StatsOutput, error) {
	filter, err := input.toFilter()
	if err != nil {
		return nil, err
	}

	stats, err := s.services.Diary.Stats(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &StatsOutput{Body: stats}, nil
}

func (s *Server) handleSearchHistory(ctx context.Context, input *SearchHistoryInput) (*SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	result, err := s.services.Diary.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, err
	}

	return &SearchOutput{Body: *result}, nil
}

// toFilter converts query parameters into a history filter.
func (in *HistoryFilterInput) toFilter() (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{
		ProductSKU:     in.SKU,
		DesiredOutcome: domain.Effect(in.Outcome),
		MinRating:      in.MinRating,
		MaxRating:      in.MaxRating,
		Tag:            in.Tag,
	}

	if in.Outcome != "" && !filter.DesiredOutcome.Valid() {
		return filter, domainerrors.Validation(fmt.Sprintf("invalid outcome %q", in.Outcome))
	}

	if in.StartDate != "" {
		d, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return filter, domainerrors.Validation(fmt.Sprintf("invalid start_date %q", in.StartDate))
		}
		filter.StartDate = d
	}
	if in.EndDate != "" {
		d, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return filter, domainerrors.Validation(fmt.Sprintf("invalid end_date %q", in.EndDate))
		}
		filter.EndDate = d
	}

	return filter, nil
}
