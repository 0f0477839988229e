package adapter

import (
	"context"
	"sync"
	"time"

	"ashi-remedies/internal/domain"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore is an in-process implementation of both domain.Cache and
// domain.ContentStore for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) get(key string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if entry.expired(s.now()) {
		s.mu.Lock()
		// A concurrent set may have replaced the entry since the read lock.
		if current, ok := s.entries[key]; ok && current.expired(s.now()) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (s *MemoryStore) set(key, value string, ttl time.Duration) {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
}

// Delete implements domain.Cache and domain.ContentStore.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Ping implements domain.Cache.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Cache exposes the store through the domain.Cache port.
func (s *MemoryStore) Cache() domain.Cache {
	return memoryCache{s}
}

// Get implements domain.ContentStore.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.get(key); ok {
		return v, nil
	}
	return "", domain.ErrContentNotFound
}

// Set implements domain.ContentStore. Content never expires.
func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.set(key, value, 0)
	return nil
}

type memoryCache struct {
	*MemoryStore
}

func (c memoryCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.get(key); ok {
		return v, nil
	}
	return "", domain.ErrCacheMiss
}

func (c memoryCache) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	c.set(key, value, expiration)
	return nil
}
