package service

import (
	"context"
	"fmt"
	"time"

	"newgen_backend/internal/common"
	"newgen_backend/internal/platform/ai"

	openai "github.com/sashabaranov/go-openai"
)

const advisorSystemPrompt = "You are a helpful career advisor for students."

type ChatService struct {
	completer ai.ChatCompleter
	model     string
	maxTokens int
	timeout   time.Duration
}

func NewChatService(completer ai.ChatCompleter, model string, maxTokens int, timeout time.Duration) *ChatService {
	return &ChatService{
		completer: completer,
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// Advise relays one user message to the provider and returns the assistant
// text. One request, one response: no retry, no streaming. The timeout keeps a
// stalled provider from pinning a request worker.
func (s *ChatService) Advise(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", common.ErrBadRequest
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: advisorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		logger.Error().Err(err).Msg("chat completion request failed")
		return "", fmt.Errorf("AI request failed: %w", common.ErrUpstream)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from provider: %w", common.ErrUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}
