package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_Reply(t *testing.T) {
	responder := &MockChatResponder{ReplyFunc: func(ctx context.Context, message string) (string, error) {
		return "Try ginger tea for " + message, nil
	}}
	cache := newMapCache()
	svc := NewChatService(responder, NewChatReplyCacheService(cache, time.Hour))

	resp, err := svc.Reply(context.Background(), &dto.ChatRequest{Message: "  a cold  "})
	require.NoError(t, err)
	assert.Equal(t, "Try ginger tea for a cold", resp.Reply)

	// Same question with different case and spacing is served from the cache.
	resp, err = svc.Reply(context.Background(), &dto.ChatRequest{Message: "A   COLD"})
	require.NoError(t, err)
	assert.Equal(t, "Try ginger tea for a cold", resp.Reply)
	assert.Equal(t, 1, responder.calls)

	require.Len(t, cache.ttls, 1)
	for key, ttl := range cache.ttls {
		assert.True(t, strings.HasPrefix(key, "ashi:chat:reply:"))
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestChatService_Validation(t *testing.T) {
	responder := &MockChatResponder{ReplyFunc: func(ctx context.Context, message string) (string, error) { return "ok", nil }}
	svc := NewChatService(responder, nil)

	tests := []struct {
		name     string
		req      *dto.ChatRequest
		wantCode domain.ErrorCode
	}{
		{"nil", nil, domain.CodeMissingField},
		{"blank", &dto.ChatRequest{Message: " \n "}, domain.CodeMissingField},
		{"too long", &dto.ChatRequest{Message: strings.Repeat("ॐ", MaxChatMessageLength+1)}, domain.CodeOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reply(context.Background(), tt.req)
			var ve domain.ValidationErrors
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantCode, ve[0].Code)
		})
	}
	assert.Zero(t, responder.calls)

	resp, err := svc.Reply(context.Background(), &dto.ChatRequest{Message: strings.Repeat("ॐ", MaxChatMessageLength)})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Reply)
}

func TestChatService_ResponderFailure(t *testing.T) {
	boom := errors.New("connection refused")
	cache := newMapCache()
	svc := NewChatService(&MockChatResponder{ReplyFunc: func(ctx context.Context, message string) (string, error) {
		return "", boom
	}}, NewChatReplyCacheService(cache, time.Hour))

	_, err := svc.Reply(context.Background(), &dto.ChatRequest{Message: "hello"})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeChatServiceError, domainErr.Code)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, cache.data, "failures are not cached")

	svc = NewChatService(&MockChatResponder{ReplyFunc: func(ctx context.Context, message string) (string, error) {
		return "", domain.NewChatServiceError(boom)
	}}, nil)
	_, err = svc.Reply(context.Background(), &dto.ChatRequest{Message: "hello"})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeChatServiceError, domainErr.Code)
}

func TestChatService_CacheErrorsFallThrough(t *testing.T) {
	responder := &MockChatResponder{ReplyFunc: func(ctx context.Context, message string) (string, error) { return "fresh", nil }}
	broken := &ManualMockCache{
		GetFunc: func(ctx context.Context, key string) (string, error) { return "", errors.New("redis down") },
		SetFunc: func(ctx context.Context, key string, value string, ttl time.Duration) error { return errors.New("redis down") },
	}
	svc := NewChatService(responder, NewChatReplyCacheService(broken, time.Hour))

	resp, err := svc.Reply(context.Background(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Reply)
	assert.Equal(t, 1, responder.calls)
}

func TestChatReplyCache_KeyNormalisation(t *testing.T) {
	svc := NewChatReplyCacheService(newMapCache(), time.Minute).(*chatReplyCacheImpl)

	assert.Equal(t, svc.generateKey("What helps a Cold?"), svc.generateKey("  what helps\ta cold? "))
	assert.NotEqual(t, svc.generateKey("cold"), svc.generateKey("cough"))

	ctx := context.Background()
	_, ok, err := svc.GetReply(ctx, "cold")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.PutReply(ctx, "cold", "ginger"))
	reply, ok, err := svc.GetReply(ctx, "COLD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ginger", reply)
}
