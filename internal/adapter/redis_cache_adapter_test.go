package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"ashi-remedies/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "ashi:quiz:session:01J0"
	expectedValue := `{"index":1}`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(expectedValue)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, expectedValue, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(key).SetErr(redisErr)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "ashi:quiz:session:01J0"
	value := `{"index":0}`
	expiration := 1 * time.Hour

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSet(key, value, expiration).SetVal("OK")
		err := adapter.Set(ctx, key, value, expiration)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectSet(key, value, expiration).SetErr(redisErr)
		err := adapter.Set(ctx, key, value, expiration)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "ashi:quiz:session:01J0"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectDel(key).SetVal(1)
		assert.NoError(t, adapter.Delete(ctx, key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SuccessKeyNotFound", func(t *testing.T) {
		mock.ExpectDel(key).SetVal(0)
		assert.NoError(t, adapter.Delete(ctx, key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(ctx))

	redisErr := errors.New("connection refused")
	mock.ExpectPing().SetErr(redisErr)
	assert.ErrorIs(t, adapter.Ping(ctx), redisErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisContentStoreBasic(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisContentStore(db)
	ctx := context.Background()

	fullKey := "ashi:content:entry:admin_remedies"

	t.Run("Get", func(t *testing.T) {
		mock.ExpectGet(fullKey).SetVal(`[]`)
		val, err := store.Get(ctx, "admin_remedies")
		assert.NoError(t, err)
		assert.Equal(t, `[]`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetMissing", func(t *testing.T) {
		mock.ExpectGet(fullKey).SetErr(redis.Nil)
		_, err := store.Get(ctx, "admin_remedies")
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetWithoutExpiry", func(t *testing.T) {
		mock.ExpectSet(fullKey, `[{"id":"1"}]`, 0).SetVal("OK")
		assert.NoError(t, store.Set(ctx, "admin_remedies", `[{"id":"1"}]`))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetError", func(t *testing.T) {
		redisErr := errors.New("readonly replica")
		mock.ExpectSet(fullKey, `[]`, 0).SetErr(redisErr)
		err := store.Set(ctx, "admin_remedies", `[]`)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectDel(fullKey).SetVal(1)
		assert.NoError(t, store.Delete(ctx, "admin_remedies"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
