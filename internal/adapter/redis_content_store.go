package adapter

import (
	"context"
	"errors"
	"fmt"

	"ashi-remedies/internal/cache"
	"ashi-remedies/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisContentStore persists site content as plain Redis strings without expiry.
type RedisContentStore struct {
	client *redis.Client
}

// NewRedisContentStore creates a ContentStore backed by Redis.
func NewRedisContentStore(client *redis.Client) *RedisContentStore {
	return &RedisContentStore{client: client}
}

func contentKey(key string) string {
	return cache.GenerateCacheKey("content", "entry", key)
}

// Get implements domain.ContentStore.
func (s *RedisContentStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, contentKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrContentNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set implements domain.ContentStore.
func (s *RedisContentStore) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, contentKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete implements domain.ContentStore.
func (s *RedisContentStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, contentKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
