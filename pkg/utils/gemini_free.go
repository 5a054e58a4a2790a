package utils

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiTextClient implements TextGeneratorInterface using Google's Gemini models
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

// NewGeminiTextClient creates a new Gemini client. baseURL is optional.
func NewGeminiTextClient(ctx context.Context, apiKey, model, baseURL string) (*GeminiTextClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiTextClient) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	config := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w: %w", model, ErrProviderUnavailable, err)
	}

	text := geminiText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini %s: %w", model, ErrEmptyGeneration)
	}
	return text, nil
}

func (c *GeminiTextClient) ModelID() string {
	return c.model
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			text += part.Text
		}
	}
	return text
}
