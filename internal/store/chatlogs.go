package store

import (
	"context"
	"slices"

	"github.com/clarityrx/clarity-server/internal/domain"
)

// Transcript returns every message in a chat session, oldest first.
func (s *Store) Transcript(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	messages, err := s.ChatLogs.ListByIndex(ctx, "session", sessionID)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(messages, func(a, b *domain.ChatMessage) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return messages, nil
}
