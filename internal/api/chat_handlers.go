package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clarityrx/clarity-server/internal/domain"
	"github.com/clarityrx/clarity-server/internal/service"
)

func (s *Server) registerChatRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "sendChatMessage",
		Method:      http.MethodPost,
		Path:        "/api/v1/chat",
		Summary:     "Send chat message",
		Description: "Sends a message to the rule-based assistant and returns the reply",
		Tags:        []string{"Chat"},
	}, s.handleSendChatMessage)

	huma.Register(s.api, huma.Operation{
		OperationID: "getChatTranscript",
		Method:      http.MethodGet,
		Path:        "/api/v1/chat/{session_id}",
		Summary:     "Get chat transcript",
		Description: "Returns the full transcript for a chat session, oldest first",
		Tags:        []string{"Chat"},
	}, s.handleGetChatTranscript)
}

// ChatRequest is the request body for a chat message.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty" doc:"Session to continue; omit to start a new one"`
	Message   string `json:"message" doc:"User message"`
}

// ChatInput wraps the chat request for Huma.
type ChatInput struct {
	Body ChatRequest
}

// ChatOutput wraps the chat reply for Huma.
type ChatOutput struct {
	Body service.ChatReply
}

// TranscriptInput contains parameters for fetching a transcript.
type TranscriptInput struct {
	SessionID string `path:"session_id" doc:"Chat session ID"`
}

// TranscriptResponse contains a chat session's messages.
type TranscriptResponse struct {
	Messages []*domain.ChatMessage `json:"messages" doc:"Messages, oldest first"`
}

// TranscriptOutput wraps the transcript response for Huma.
type TranscriptOutput struct {
	Body TranscriptResponse
}

func (s *Server) handleSendChatMessage(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	reply, err := s.services.Chat.Send(ctx, input.Body.SessionID, input.Body.Message)
	if err != nil {
		return nil, err
	}

	return &ChatOutput{Body: *reply}, nil
}

func (s *Server) handleGetChatTranscript(ctx context.Context, input *TranscriptInput) (*TranscriptOutput, error) {
	messages, err := s.services.Chat.Transcript(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*domain.ChatMessage{}
	}

	return &TranscriptOutput{Body: TranscriptResponse{Messages: messages}}, nil
}
