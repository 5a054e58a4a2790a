package services

import (
	"context"
	"math/rand/v2"
	"time"

	"ember/internal/catalog"
	"ember/internal/config"
	"ember/internal/models/response_models"
	"ember/pkg/utils"

	"go.uber.org/zap"
)

// PlaceholderQuestion is returned when a category has no fallback questions.
const PlaceholderQuestion = "What's been on your mind lately?"

type QuestionServiceInterface interface {
	Resolve(ctx context.Context, category string) response_models.GenerationResult
	Categories() []response_models.CategoryResponse
	AIEnabled() bool
}

type QuestionService struct {
	catalog   *catalog.Catalog
	generator utils.TextGeneratorInterface
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *zap.Logger

	// pick returns an index in [0, n).
	pick func(n int) int
}

// NewQuestionService wires the resolver. A nil generator disables the
// model-backed path and every request is served from the fallback lists.
func NewQuestionService(
	cat *catalog.Catalog,
	generator utils.TextGeneratorInterface,
	cfg config.GenerationConfig,
	logger *zap.Logger,
) QuestionServiceInterface {
	return &QuestionService{
		catalog:   cat,
		generator: generator,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		logger:    logger.Named("question"),
		pick:      rand.IntN,
	}
}

// Resolve returns a question for category. It never fails: provider errors
// are logged and answered from the category's fallback list.
func (s *QuestionService) Resolve(ctx context.Context, category string) response_models.GenerationResult {
	cat := s.catalog.Resolve(category)

	outcome := s.generate(ctx, cat)
	switch outcome.Kind {
	case utils.OutcomeGenerated:
		return response_models.GenerationResult{Question: outcome.Text, IsAiGenerated: true}
	case utils.OutcomeFailed:
		s.logger.Warn("generation failed, serving fallback",
			zap.String("category", string(cat)),
			zap.Error(outcome.Err))
	}

	return response_models.GenerationResult{Question: s.fallback(cat)}
}

func (s *QuestionService) generate(ctx context.Context, cat catalog.Category) utils.GenerationOutcome {
	if s.generator == nil {
		return utils.GenerationOutcome{Kind: utils.OutcomeDisabled}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return utils.Generate(ctx, s.generator, utils.GenerationRequest{
		Model:     s.model,
		Prompt:    s.catalog.Instruction(cat),
		MaxTokens: s.maxTokens,
	})
}

func (s *QuestionService) fallback(cat catalog.Category) string {
	n := s.catalog.Count(cat)
	if n == 0 {
		s.logger.Error("empty fallback list", zap.String("category", string(cat)))
		return PlaceholderQuestion
	}

	q, ok := s.catalog.QuestionAt(cat, s.pick(n))
	if !ok || q == "" {
		return PlaceholderQuestion
	}
	return q
}

func (s *QuestionService) Categories() []response_models.CategoryResponse {
	entries := s.catalog.Entries()
	out := make([]response_models.CategoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response_models.CategoryResponse{
			Key:           string(e.Key),
			Name:          e.Name,
			Emoji:         e.Emoji,
			Description:   e.Description,
			QuestionCount: len(e.Questions),
		})
	}
	return out
}

func (s *QuestionService) AIEnabled() bool {
	return s.generator != nil
}
