package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/clarityrx/clarity-server/internal/catalog"
	"github.com/clarityrx/clarity-server/internal/domain"
	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
	"github.com/clarityrx/clarity-server/internal/id"
	"github.com/clarityrx/clarity-server/internal/store"
)

// OnboardingService runs the survey-to-starter-product flow and keeps
// a record of every survey it answered.
type OnboardingService struct {
	catalog *catalog.Service
	store   *store.Store
	logger  *slog.Logger
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(catalog *catalog.Service, store *store.Store, logger *slog.Logger) *OnboardingService {
	return &OnboardingService{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
}

// Recommendation is the outcome of an answered survey.
type Recommendation struct {
	SurveyID    string         `json:"survey_id"`
	Product     domain.Product `json:"product"`
	THCMg       float64        `json:"suggested_thc_mg"`
	Explanation string         `json:"explanation"`
}

// Recommend validates the survey, runs the starter-product rule, and
// persists the response.
func (s *OnboardingService) Recommend(ctx context.Context, in domain.RecommendationInput) (*Recommendation, error) {
	details := map[string]string{}
	if !in.AgeRange.Valid() {
		details["age_range"] = "must be one of: 18-29, 30-44, 45-59, 60-plus"
	}
	if !in.Goal.Valid() {
		details["primary_goal"] = "must be one of: sleep, calm, relief, focus"
	}
	if !in.Experience.Valid() {
		details["experience"] = "must be one of: naive, light, regular, heavy"
	}
	if len(details) > 0 {
		return nil, domainerrors.ValidationWithDetails("invalid survey", details)
	}

	product := domain.ChooseStarterProduct(s.catalog.Catalog(), in)
	explanation := domain.ExplainRecommendation(in, product)

	surveyID, err := id.Generate("survey")
	if err != nil {
		return nil, domainerrors.Internal("failed to generate survey id").WithCause(err)
	}

	response := &domain.SurveyResponse{
		ID:          surveyID,
		Input:       in,
		ChosenSKU:   product.SKU,
		Explanation: explanation,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Surveys.Create(ctx, response); err != nil {
		return nil, err
	}

	s.logger.Info("starter product recommended",
		"survey_id", response.ID,
		"goal", in.Goal,
		"sku", product.SKU,
	)

	return &Recommendation{
		SurveyID:    response.ID,
		Product:     product,
		THCMg:       product.THCMgPerCapsule,
		Explanation: explanation,
	}, nil
}
