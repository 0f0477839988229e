package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"ashi-remedies/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// MockModel is a mock implementation of llms.Model
type MockModel struct {
	GenerateContentFunc func(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return m.GenerateContentFunc(ctx, messages, options...)
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestCannedResponder(t *testing.T) {
	r := NewCannedResponder()

	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"cold", "I have a bad COLD since Monday", "Ginger Honey Tea"},
		{"sleep", "I can't sleep at night", "Ashwagandha"},
		{"digestion", "so much bloating after lunch", "Jeera Saunf"},
		{"dosha", "what is my dosha?", "Nadi Pariksha"},
		{"fallback", "hello there", "Namaste"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := r.Reply(context.Background(), tt.message)
			require.NoError(t, err)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestLLMResponder_Reply(t *testing.T) {
	var got []llms.MessageContent
	model := &MockModel{
		GenerateContentFunc: func(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
			got = messages
			return &llms.ContentResponse{Choices: []*llms.ContentChoice{
				{Content: "<think>user has kapha congestion</think>\nTry Tulsi Kadha twice a day."},
			}}, nil
		},
	}

	reply, err := NewLLMResponder(model, time.Second).Reply(context.Background(), "blocked nose")
	require.NoError(t, err)
	assert.Equal(t, "Try Tulsi Kadha twice a day.\n\n"+Disclaimer, reply)

	require.Len(t, got, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, got[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, got[1].Role)
	assert.Equal(t, llms.TextContent{Text: "blocked nose"}, got[1].Parts[0])
}

func TestLLMResponder_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp *llms.ContentResponse
		err  error
	}{
		{name: "backend error", err: errors.New("connection refused")},
		{name: "timeout", err: context.DeadlineExceeded},
		{name: "no choices", resp: &llms.ContentResponse{}},
		{name: "only thinking", resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "<think>hmm</think>"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &MockModel{
				GenerateContentFunc: func(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
					return tt.resp, tt.err
				},
			}
			_, err := NewLLMResponder(model, 0).Reply(context.Background(), "hi")
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeChatServiceError, domainErr.Code)
		})
	}
}

func TestStripThinking(t *testing.T) {
	assert.Equal(t, "answer", stripThinking("  answer "))
	assert.Equal(t, "answer", stripThinking("<think>x</think> answer"))
	assert.Equal(t, "</think>odd<think>", stripThinking("</think>odd<think>"))
}
