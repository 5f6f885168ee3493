// Package chat is a thin LLM completion passthrough. It sits outside
// the triage pipeline; the server exposes it as a convenience RPC.
package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

const (
	defaultModel = "claude-sonnet-4-5-20250929"
	maxTokens    = 1024
)

// ErrNoAPIKey is returned when the service is constructed without a key.
var ErrNoAPIKey = errors.New("anthropic api key is not set")

// Service wraps the Anthropic messages API for single-prompt chat.
type Service struct {
	client anthropic.Client
	model  anthropic.Model
	logger *zap.Logger
}

// NewService creates a chat Service. apiKey is required; model falls
// back to the default when empty.
func NewService(apiKey, model string, logger *zap.Logger) (*Service, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
		logger: logger.Named("chat"),
	}, nil
}

// Chat sends the prompt and returns the first text block of the reply.
func (s *Service) Chat(ctx context.Context, prompt string) (string, error) {
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api: %w", err)
	}

	s.logger.Debug("chat completion",
		zap.Int64("input_tokens", message.Usage.InputTokens),
		zap.Int64("output_tokens", message.Usage.OutputTokens))

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("no text content in model response")
}
