package api

import (
	"github.com/clarityrx/clarity-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Onboarding *service.OnboardingService
	Diary      *service.DiaryService
	Chat       *service.ChatService
}
