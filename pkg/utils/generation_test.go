package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_NilClientIsDisabled(t *testing.T) {
	out := Generate(context.Background(), nil, GenerationRequest{Prompt: "p"})

	assert.Equal(t, OutcomeDisabled, out.Kind)
	assert.Empty(t, out.Text)
	assert.NoError(t, out.Err)
}

func TestGenerate_TrimsText(t *testing.T) {
	mock := NewMockTextClient(MockTextResponse{Text: "  What makes you laugh?\n"})

	out := Generate(context.Background(), mock, GenerationRequest{Model: "m", Prompt: "p", MaxTokens: 100})

	assert.Equal(t, OutcomeGenerated, out.Kind)
	assert.Equal(t, "What makes you laugh?", out.Text)
	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, GenerationRequest{Model: "m", Prompt: "p", MaxTokens: 100}, mock.Calls[0])
}

func TestGenerate_BlankTextFails(t *testing.T) {
	mock := NewMockTextClient(MockTextResponse{Text: " \n\t "})

	out := Generate(context.Background(), mock, GenerationRequest{})

	assert.Equal(t, OutcomeFailed, out.Kind)
	assert.True(t, errors.Is(out.Err, ErrEmptyGeneration))
}

func TestGenerate_ErrorFails(t *testing.T) {
	boom := errors.New("connection reset")
	mock := NewMockTextClient(MockTextResponse{Err: boom})

	out := Generate(context.Background(), mock, GenerationRequest{})

	assert.Equal(t, OutcomeFailed, out.Kind)
	assert.ErrorIs(t, out.Err, boom)
	assert.Empty(t, out.Text)
}

func TestMockTextClient_EmptyQueue(t *testing.T) {
	mock := NewMockTextClient()

	_, err := mock.GenerateText(context.Background(), GenerationRequest{})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, 1, mock.CallCount())
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "disabled", OutcomeDisabled.String())
	assert.Equal(t, "generated", OutcomeGenerated.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}
