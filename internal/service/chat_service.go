package service

import (
	"context"

	"rag-support-be/internal/dto"
	"rag-support-be/internal/pkg/logger"
	"rag-support-be/pkg/rag/session"
	"rag-support-be/pkg/rag/synthesis"
)

// IChatService defines the conversational chat interface.
type IChatService interface {
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ResetSession(ctx context.Context, request *dto.ResetSessionRequest) (*dto.ResetSessionResponse, error)
}

type chatService struct {
	synthesizer *synthesis.Synthesizer
	sessions    *session.Store
	logger      logger.ILogger
}

var _ IChatService = &chatService{}

func NewChatService(synthesizer *synthesis.Synthesizer, sessions *session.Store, log logger.ILogger) IChatService {
	return &chatService{
		synthesizer: synthesizer,
		sessions:    sessions,
		logger:      log,
	}
}

// SendMessage answers one user turn. A missing session id starts a fresh
// session whose id is returned so the client can continue the conversation.
func (s *chatService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	sessionId := request.SessionId
	if sessionId == "" {
		sessionId = session.NewSessionID()
	}

	result, err := s.synthesizer.Answer(ctx, sessionId, request.Message)
	if err != nil {
		s.logger.Error("chat", "failed to answer message", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	return &dto.SendMessageResponse{
		SessionId: result.SessionID,
		Category:  result.Category,
		Answer:    result.Answer,
		Sources:   result.Evidence,
	}, nil
}

func (s *chatService) ResetSession(ctx context.Context, request *dto.ResetSessionRequest) (*dto.ResetSessionResponse, error) {
	s.sessions.Reset(request.SessionId)
	return &dto.ResetSessionResponse{
		SessionId: request.SessionId,
		Reset:     true,
	}, nil
}
