package domain

import "time"

// SurveyResponse is a stored onboarding survey along with the product
// the rule chose for it.
type SurveyResponse struct {
	ID          string              `json:"id"`
	Input       RecommendationInput `json:"input"`
	ChosenSKU   string              `json:"chosen_sku"`
	Explanation string              `json:"explanation"`
	CreatedAt   time.Time           `json:"created_at"`
}
