package adapter

import (
	"context"
	"testing"
	"time"

	"ashi-remedies/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ContentStore(t *testing.T) {
	ctx := context.Background()
	var store domain.ContentStore = NewMemoryStore()

	_, err := store.Get(ctx, domain.KeyQuiz)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)

	require.NoError(t, store.Set(ctx, domain.KeyQuiz, `[]`))
	val, err := store.Get(ctx, domain.KeyQuiz)
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	require.NoError(t, store.Delete(ctx, domain.KeyQuiz))
	require.NoError(t, store.Delete(ctx, domain.KeyQuiz), "deleting a missing key is not an error")
	_, err = store.Get(ctx, domain.KeyQuiz)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestMemoryStore_CacheExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 10, 12, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	c := store.Cache()

	require.NoError(t, c.Set(ctx, "session", "state", time.Minute))
	require.NoError(t, c.Set(ctx, "forever", "state", 0))

	val, err := c.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "state", val)

	now = now.Add(2 * time.Minute)
	_, err = c.Get(ctx, "session")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	_, err = c.Get(ctx, "forever")
	assert.NoError(t, err)
	assert.NoError(t, c.Ping(ctx))
}

func TestMemoryStore_ExpiryKeepsConcurrentlyWrittenValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 10, 12, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	c := store.Cache()

	require.NoError(t, c.Set(ctx, "session", "stale", time.Minute))
	now = now.Add(2 * time.Minute)

	// The first clock read happens after get has released its read lock;
	// a writer slips in there.
	rewrite := true
	store.now = func() time.Time {
		if rewrite {
			rewrite = false
			store.set("session", "fresh", 0)
		}
		return now
	}

	_, err := c.Get(ctx, "session")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	val, err := c.Get(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, "fresh", val)
}
