package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextClient implements TextGeneratorInterface with chat completions.
// BaseURL lets it talk to any OpenAI-compatible API.
type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model, baseURL string) (*OpenAITextClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAITextClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (c *OpenAITextClient) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai %s: %w: %w", model, ErrProviderUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai %s: no choices: %w", model, ErrEmptyGeneration)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAITextClient) ModelID() string {
	return c.model
}
