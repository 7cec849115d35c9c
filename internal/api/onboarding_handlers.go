package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clarityrx/clarity-server/internal/domain"
	"github.com/clarityrx/clarity-server/internal/service"
)

func (s *Server) registerOnboardingRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "submitSurvey",
		Method:      http.MethodPost,
		Path:        "/api/v1/onboarding",
		Summary:     "Submit onboarding survey",
		Description: "Answers the intake survey and returns the starter product recommendation",
		Tags:        []string{"Onboarding"},
	}, s.handleSubmitSurvey)
}

// SurveyRequest is the request body for the onboarding survey.
type SurveyRequest struct {
	AgeRange    string `json:"age_range" doc:"Age bracket: 18-29, 30-44, 45-59, or 60-plus"`
	PrimaryGoal string `json:"primary_goal" doc:"Desired effect: sleep, calm, relief, or focus"`
	Experience  string `json:"experience" doc:"THC experience: naive, light, regular, or heavy"`
}

// SurveyInput wraps the survey request for Huma.
type SurveyInput struct {
	Body SurveyRequest
}

// RecommendationOutput wraps the recommendation for Huma.
type RecommendationOutput struct {
	Body service.Recommendation
}

func (s *Server) handleSubmitSurvey(ctx context.Context, input *SurveyInput) (*RecommendationOutput, error) {
	rec, err := s.services.Onboarding.Recommend(ctx, domain.RecommendationInput{
		AgeRange:   domain.AgeRange(input.Body.AgeRange),
		Goal:       domain.Effect(input.Body.PrimaryGoal),
		Experience: domain.Experience(input.Body.Experience),
	})
	if err != nil {
		return nil, err
	}

	return &RecommendationOutput{Body: *rec}, nil
}
