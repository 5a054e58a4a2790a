package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationRequest is the single call made to a text generation provider.
type GenerationRequest struct {
	Model     string
	Prompt    string
	MaxTokens int
}

// TextGeneratorInterface is satisfied by any provider offering text
// completion for a prompt.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
	ModelID() string
}

type OutcomeKind int

const (
	OutcomeDisabled OutcomeKind = iota
	OutcomeGenerated
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeGenerated:
		return "generated"
	case OutcomeFailed:
		return "failed"
	default:
		return "disabled"
	}
}

// GenerationOutcome is the result of one generation attempt. Text is set
// only for OutcomeGenerated, Err only for OutcomeFailed.
type GenerationOutcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

// Generate runs a single attempt against client and folds every failure,
// including blank output, into an OutcomeFailed value. A nil client yields
// OutcomeDisabled.
func Generate(ctx context.Context, client TextGeneratorInterface, req GenerationRequest) GenerationOutcome {
	if client == nil {
		return GenerationOutcome{Kind: OutcomeDisabled}
	}

	text, err := client.GenerateText(ctx, req)
	if err != nil {
		return GenerationOutcome{Kind: OutcomeFailed, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return GenerationOutcome{
			Kind: OutcomeFailed,
			Err:  fmt.Errorf("%s: %w", client.ModelID(), ErrEmptyGeneration),
		}
	}

	return GenerationOutcome{Kind: OutcomeGenerated, Text: text}
}
