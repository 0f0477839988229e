package handler_test

import (
	"context"
	"errors"
	"testing"

	"ashi-remedies/internal/adapter/chat"
	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/dto"
	"ashi-remedies/internal/handler"
	"ashi-remedies/internal/middleware"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockChatService for handler tests
type MockChatService struct {
	ReplyFunc func(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

func (m *MockChatService) Reply(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, req)
	}
	panic("MockChatService.ReplyFunc not implemented")
}

var _ service.ChatService = (*MockChatService)(nil)

func TestChatHandler_Reply(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, "POST", "/api/chat", dto.ChatRequest{Message: "I have a bad cold"}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.ChatResponse
	decode(t, resp, &body)
	assert.Contains(t, body.Reply, "Ginger Honey Tea")
	assert.Contains(t, body.Reply, chat.Disclaimer)

	resp = srv.do(t, "POST", "/api/chat", dto.ChatRequest{Message: "   "}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatHandler_BackendUnavailable(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewChatHandler(&MockChatService{ReplyFunc: func(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
		return nil, domain.NewChatServiceError(errors.New("ollama: connection refused"))
	}})
	app.Post("/api/chat", h.Reply)

	srv := &testServer{app: app}
	resp := srv.do(t, "POST", "/api/chat", dto.ChatRequest{Message: "hello"}, "")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	var body middleware.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, string(domain.CodeChatServiceError), body.Code)
}

func TestHealthHandler(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, "GET", "/healthz", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body handler.HealthResponse
	decode(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, uint64(1), body.ContentVersion)
}
