package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicTextClient implements TextGeneratorInterface with the Messages API.
type AnthropicTextClient struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicTextClient(apiKey, model string, opts ...option.RequestOption) (*AnthropicTextClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}

	// one attempt per request; failures go straight to fallback
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	client := anthropic.NewClient(opts...)
	return &AnthropicTextClient{
		client: &client,
		model:  model,
	}, nil
}

func (c *AnthropicTextClient) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic %s: %w: %w", model, ErrProviderUnavailable, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("anthropic %s: %w", model, ErrEmptyGeneration)
	}
	return b.String(), nil
}

func (c *AnthropicTextClient) ModelID() string {
	return c.model
}
