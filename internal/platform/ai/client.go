package ai

import (
	"context"

	"newgen_backend/internal/platform/config"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI-compatible client the chat proxy needs.
// *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient builds a chat-completion client pointed at the configured provider
// (OpenRouter by default, which speaks the OpenAI wire contract).
func NewClient() *openai.Client {
	cfg := openai.DefaultConfig(config.AppConfig.AIAPIKey)
	cfg.BaseURL = config.AppConfig.AIBaseURL
	return openai.NewClientWithConfig(cfg)
}
