package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"ashi-remedies/internal/cache"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/logger"

	"go.uber.org/zap"
)

// ChatReplyCacheService defines the interface for caching assistant replies.
type ChatReplyCacheService interface {
	GetReply(ctx context.Context, message string) (string, bool, error)
	PutReply(ctx context.Context, message string, reply string) error
}

// chatReplyCacheImpl implements ChatReplyCacheService. Messages that differ
// only in case or spacing share an entry.
type chatReplyCacheImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewChatReplyCacheService creates a new instance of chatReplyCacheImpl
func NewChatReplyCacheService(cache domain.Cache, ttl time.Duration) ChatReplyCacheService {
	return &chatReplyCacheImpl{cache: cache, ttl: ttl}
}

func (s *chatReplyCacheImpl) generateKey(message string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(message)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return cache.GenerateCacheKey("chat", "reply", hex.EncodeToString(sum[:]))
}

// GetReply returns the cached reply for message, if any.
func (s *chatReplyCacheImpl) GetReply(ctx context.Context, message string) (string, bool, error) {
	key := s.generateKey(message)
	reply, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("ChatReplyCache: cache miss", zap.String("key", key))
			return "", false, nil
		}
		logger.Get().Error("ChatReplyCache: cache get failed", zap.Error(err), zap.String("key", key))
		return "", false, err
	}
	return reply, reply != "", nil
}

// PutReply stores reply for message.
func (s *chatReplyCacheImpl) PutReply(ctx context.Context, message string, reply string) error {
	key := s.generateKey(message)
	if err := s.cache.Set(ctx, key, reply, s.ttl); err != nil {
		logger.Get().Error("ChatReplyCache: cache set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}
