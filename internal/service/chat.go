package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clarityrx/clarity-server/internal/domain"
	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
	"github.com/clarityrx/clarity-server/internal/id"
	"github.com/clarityrx/clarity-server/internal/store"
)

// ChatService runs the rule-based assistant and keeps transcripts per
// session.
type ChatService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewChatService creates a new chat service.
func NewChatService(store *store.Store, logger *slog.Logger) *ChatService {
	return &ChatService{
		store:  store,
		logger: logger,
	}
}

// ChatReply is the assistant's answer to one user message.
type ChatReply struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Topic     string `json:"topic"`
}

// Send records a user message, produces the rule-based reply, and
// records that too. An empty session ID starts a new session.
func (s *ChatService) Send(ctx context.Context, sessionID, message string) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.Validation("message must not be empty")
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, topic := domain.Reply(message)
	now := time.Now().UTC()

	userID, err := id.Generate("chat")
	if err != nil {
		return nil, domainerrors.Internal("failed to generate message id").WithCause(err)
	}
	assistantID, err := id.Generate("chat")
	if err != nil {
		return nil, domainerrors.Internal("failed to generate message id").WithCause(err)
	}

	userMsg := &domain.ChatMessage{
		ID:        userID,
		SessionID: sessionID,
		Role:      domain.ChatRoleUser,
		Message:   message,
		Topic:     topic,
		CreatedAt: now,
	}
	assistantMsg := &domain.ChatMessage{
		ID:        assistantID,
		SessionID: sessionID,
		Role:      domain.ChatRoleAssistant,
		Message:   reply,
		Topic:     topic,
		CreatedAt: now.Add(time.Millisecond), // keep transcript ordering stable
	}

	if err := s.store.ChatLogs.Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := s.store.ChatLogs.Create(ctx, assistantMsg); err != nil {
		return nil, err
	}

	s.logger.Info("chat message answered", "session_id", sessionID, "topic", topic)

	return &ChatReply{
		SessionID: sessionID,
		Reply:     reply,
		Topic:     topic,
	}, nil
}

// Transcript returns every message in a session, oldest first.
func (s *ChatService) Transcript(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	return s.store.Transcript(ctx, sessionID)
}
