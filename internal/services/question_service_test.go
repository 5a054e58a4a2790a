package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ember/internal/catalog"
	"ember/internal/config"
	"ember/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testGenConfig = config.GenerationConfig{
	Provider:  config.ProviderOpenAI,
	APIKey:    "test-key",
	Model:     "gpt-4o",
	MaxTokens: 100,
	Timeout:   time.Second,
}

func newTestService(t *testing.T, gen utils.TextGeneratorInterface) *QuestionService {
	t.Helper()
	svc := NewQuestionService(catalog.New(), gen, testGenConfig, zap.NewNop())
	return svc.(*QuestionService)
}

// blockingGenerator waits for the context to end.
type blockingGenerator struct{}

func (blockingGenerator) GenerateText(ctx context.Context, _ utils.GenerationRequest) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (blockingGenerator) ModelID() string { return "blocking" }

func TestResolve_NoGeneratorUsesCategoryList(t *testing.T) {
	svc := newTestService(t, nil)
	cat := catalog.New()

	for _, e := range cat.Entries() {
		for i := 0; i < 50; i++ {
			res := svc.Resolve(context.Background(), string(e.Key))
			assert.False(t, res.IsAiGenerated)
			assert.NotEmpty(t, res.Question)
			assert.Contains(t, e.Questions, res.Question, "category %s", e.Key)
		}
	}
}

func TestResolve_GlowWithoutGenerator(t *testing.T) {
	svc := newTestService(t, nil)
	glow := catalog.New().Questions(catalog.Glow)
	require.Len(t, glow, 8)

	res := svc.Resolve(context.Background(), "glow")

	assert.False(t, res.IsAiGenerated)
	assert.Contains(t, glow, res.Question)
}

func TestResolve_UnknownCategoryUsesComposite(t *testing.T) {
	svc := newTestService(t, nil)
	flip := catalog.New().Questions(catalog.Flip)

	for i := 0; i < 200; i++ {
		res := svc.Resolve(context.Background(), "nonsense")
		assert.Contains(t, flip, res.Question)
		assert.False(t, res.IsAiGenerated)
	}
}

func TestResolve_UnknownMatchesCompositeAcrossPicks(t *testing.T) {
	svc := newTestService(t, nil)

	for i := 0; i < 10; i++ {
		svc.pick = func(int) int { return i }
		assert.Equal(t,
			svc.Resolve(context.Background(), "flip"),
			svc.Resolve(context.Background(), "nonsense"))
	}
}

func TestResolve_UsesPicker(t *testing.T) {
	svc := newTestService(t, nil)
	var gotN int
	svc.pick = func(n int) int {
		gotN = n
		return 3
	}

	res := svc.Resolve(context.Background(), "drift")

	assert.Equal(t, 8, gotN)
	assert.Equal(t, "What's the most beautiful thing about being human?", res.Question)
}

func TestResolve_GeneratedQuestion(t *testing.T) {
	mock := utils.NewMockTextClient(utils.MockTextResponse{Text: "  \"Is soup a drink?\"\n"})
	svc := newTestService(t, mock)

	res := svc.Resolve(context.Background(), "spice")

	assert.True(t, res.IsAiGenerated)
	assert.Equal(t, "\"Is soup a drink?\"", res.Question)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, "gpt-4o", call.Model)
	assert.Equal(t, 100, call.MaxTokens)
	assert.Equal(t, catalog.New().Instruction(catalog.Spice), call.Prompt)
}

func TestResolve_UnknownCategoryUsesCompositeInstruction(t *testing.T) {
	mock := utils.NewMockTextClient(utils.MockTextResponse{Text: "Anything goes?"})
	svc := newTestService(t, mock)

	svc.Resolve(context.Background(), "nonsense")

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, catalog.New().Instruction(catalog.Flip), mock.Calls[0].Prompt)
}

func TestResolve_ProviderFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		resp utils.MockTextResponse
	}{
		{"error", utils.MockTextResponse{Err: errors.New("dial tcp: connection refused")}},
		{"empty text", utils.MockTextResponse{Text: ""}},
		{"whitespace text", utils.MockTextResponse{Text: "   \n"}},
	}
	edge := catalog.New().Questions(catalog.Edge)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := utils.NewMockTextClient(tt.resp)
			svc := newTestService(t, mock)

			res := svc.Resolve(context.Background(), "edge")

			assert.False(t, res.IsAiGenerated)
			assert.Contains(t, edge, res.Question)
			assert.Equal(t, 1, mock.CallCount())
		})
	}
}

func TestResolve_TimeoutFallsBack(t *testing.T) {
	svc := newTestService(t, blockingGenerator{})
	svc.timeout = 20 * time.Millisecond

	start := time.Now()
	res := svc.Resolve(context.Background(), "chuckle")

	assert.True(t, time.Since(start) < 2*time.Second, "fallback should not wait for the provider")
	assert.False(t, res.IsAiGenerated)
	assert.Contains(t, catalog.New().Questions(catalog.Chuckle), res.Question)
}

func TestResolve_CancelledRequestStillAnswers(t *testing.T) {
	svc := newTestService(t, blockingGenerator{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := svc.Resolve(ctx, "glow")

	assert.False(t, res.IsAiGenerated)
	assert.Contains(t, catalog.New().Questions(catalog.Glow), res.Question)
}

func TestResolve_EmptyListReturnsPlaceholder(t *testing.T) {
	cat := catalog.Build([]catalog.Entry{
		{Key: "quiet"},
		{Key: "mix", Composite: true},
	})
	svc := NewQuestionService(cat, nil, testGenConfig, zap.NewNop()).(*QuestionService)
	svc.pick = func(int) int {
		t.Fatal("picker must not be called for an empty list")
		return 0
	}

	assert.Equal(t, PlaceholderQuestion, svc.Resolve(context.Background(), "quiet").Question)
	assert.Equal(t, PlaceholderQuestion, svc.Resolve(context.Background(), "unknown").Question)
}

func TestResolve_Concurrent(t *testing.T) {
	mock := utils.NewMockTextClient()
	svc := newTestService(t, mock)
	flip := catalog.New().Questions(catalog.Flip)

	var wg sync.WaitGroup
	results := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.Resolve(context.Background(), "flip").Question
		}()
	}
	wg.Wait()
	close(results)

	for q := range results {
		assert.Contains(t, flip, q)
	}
	assert.Equal(t, 64, mock.CallCount())
}

func TestCategories(t *testing.T) {
	svc := newTestService(t, nil)

	cats := svc.Categories()

	require.Len(t, cats, 6)
	assert.Equal(t, "spice", cats[0].Key)
	assert.Equal(t, "Spice", cats[0].Name)
	assert.Equal(t, 8, cats[0].QuestionCount)
	assert.Equal(t, "flip", cats[5].Key)
	assert.Equal(t, 10, cats[5].QuestionCount)
	assert.False(t, svc.AIEnabled())
	assert.True(t, newTestService(t, utils.NewMockTextClient()).AIEnabled())
}
