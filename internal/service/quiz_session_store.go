package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ashi-remedies/internal/cache"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/matching"

	"go.uber.org/zap"
)

// QuizSession is the persisted form of one dosha quiz run. The question bank
// is captured at start so that admin edits do not disturb a run in progress.
type QuizSession struct {
	ID        string                `json:"id"`
	Questions []domain.QuizQuestion `json:"questions"`
	State     matching.ScorerState  `json:"state"`
	CreatedAt time.Time             `json:"created_at"`
	ExpiresAt time.Time             `json:"expires_at"`
}

// QuizSessionStore defines the interface for persisting quiz sessions.
type QuizSessionStore interface {
	Put(ctx context.Context, session *QuizSession) error
	Get(ctx context.Context, sessionID string) (*QuizSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// quizSessionStoreImpl implements QuizSessionStore using a generic cache.
type quizSessionStoreImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizSessionStore creates a new instance of quizSessionStoreImpl.
func NewQuizSessionStore(cache domain.Cache, ttl time.Duration) QuizSessionStore {
	return &quizSessionStoreImpl{
		cache: cache,
		ttl:   ttl,
	}
}

func (s *quizSessionStoreImpl) generateKey(sessionID string) string {
	return cache.GenerateCacheKey("quiz", "session", sessionID)
}

// Put stores the session and refreshes its expiry.
func (s *quizSessionStoreImpl) Put(ctx context.Context, session *QuizSession) error {
	if session == nil {
		return domain.NewInvalidInputError("cannot store nil quiz session")
	}

	key := s.generateKey(session.ID)
	dataBytes, err := json.Marshal(session)
	if err != nil {
		logger.Get().Error("Failed to marshal quiz session", zap.Error(err), zap.String("sessionID", session.ID))
		return domain.NewInternalError("failed to marshal quiz session", err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to store quiz session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store quiz session for key %s", key), err)
	}
	logger.Get().Debug("Stored quiz session", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get loads a session; unknown and expired sessions are reported as not found.
func (s *quizSessionStoreImpl) Get(ctx context.Context, sessionID string) (*QuizSession, error) {
	key := s.generateKey(sessionID)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Quiz session cache miss", zap.String("key", key))
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to get quiz session from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get quiz session for key %s", key), err)
	}
	if dataString == "" {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	var session QuizSession
	if err := json.Unmarshal([]byte(dataString), &session); err != nil {
		logger.Get().Error("Failed to unmarshal quiz session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal quiz session for key %s", key), err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *quizSessionStoreImpl) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, s.generateKey(sessionID)); err != nil {
		return domain.NewInternalError("failed to delete quiz session", err)
	}
	return nil
}
