package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

const systemPrompt = `You are Vedji, the friendly Ayurvedic guide of Ashi's Remedies.
Answer in at most four sentences. Suggest simple kitchen remedies using common Indian
household ingredients, mention the dosha involved when relevant, and never diagnose.`

// LLMResponder answers through a langchaingo chat model such as Ollama.
type LLMResponder struct {
	model   llms.Model
	timeout time.Duration
}

// NewLLMResponder creates a responder backed by model. A zero timeout means
// the caller's context alone bounds the request.
func NewLLMResponder(model llms.Model, timeout time.Duration) domain.ChatResponder {
	return &LLMResponder{model: model, timeout: timeout}
}

// Reply implements domain.ChatResponder
func (r *LLMResponder) Reply(ctx context.Context, message string) (string, error) {
	l := logger.Get()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, message),
	}
	resp, err := r.model.GenerateContent(ctx, messages, llms.WithTemperature(0.3))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("Chat model request timed out", zap.Error(err))
			return "", domain.NewChatServiceError(fmt.Errorf("chat model timed out: %w", err))
		}
		l.Error("Failed to get response from chat model", zap.Error(err))
		return "", domain.NewChatServiceError(fmt.Errorf("chat model call failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewChatServiceError(errors.New("chat model returned no choices"))
	}

	reply := stripThinking(resp.Choices[0].Content)
	if reply == "" {
		return "", domain.NewChatServiceError(errors.New("chat model returned an empty reply"))
	}
	l.Debug("Chat model replied", zap.Int("reply_length", len(reply)))
	return reply + "\n\n" + Disclaimer, nil
}

// stripThinking removes a <think>...</think> block emitted by reasoning models.
func stripThinking(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "<think>")
	if start == -1 {
		return s
	}
	end := strings.Index(s, "</think>")
	if end == -1 || end < start {
		return s
	}
	return strings.TrimSpace(s[:start] + s[end+len("</think>"):])
}
