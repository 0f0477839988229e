package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/logger"

	"go.uber.org/zap"
)

// MaxChatMessageLength bounds a single assistant message in characters.
const MaxChatMessageLength = 1000

// ChatService defines the interface for the Vedji assistant
type ChatService interface {
	Reply(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	responder domain.ChatResponder
	replies   ChatReplyCacheService
}

// NewChatService creates a new instance of chatService. replies may be nil
// to disable reply caching.
func NewChatService(responder domain.ChatResponder, replies ChatReplyCacheService) ChatService {
	return &chatService{responder: responder, replies: replies}
}

// Reply implements ChatService
func (s *chatService) Reply(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if req == nil || strings.TrimSpace(req.Message) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("message")}
	}
	if n := utf8.RuneCountInString(req.Message); n > MaxChatMessageLength {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("message", n, 1, MaxChatMessageLength)}
	}

	message := strings.TrimSpace(req.Message)
	if s.replies != nil {
		if cached, ok, cacheErr := s.replies.GetReply(ctx, message); cacheErr == nil && ok {
			return &dto.ChatResponse{Reply: cached}, nil
		}
	}

	reply, err := s.responder.Reply(ctx, message)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		logger.Get().Error("Chat responder failed", zap.Error(err))
		return nil, domain.NewChatServiceError(err)
	}
	if s.replies != nil {
		if cacheErr := s.replies.PutReply(ctx, message, reply); cacheErr != nil {
			logger.Get().Warn("Failed to cache chat reply", zap.Error(cacheErr))
		}
	}
	return &dto.ChatResponse{Reply: reply}, nil
}
