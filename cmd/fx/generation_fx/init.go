package generation_fx

import (
	"context"

	"ember/internal/config"
	"ember/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(ProvideTextGenerator)

// ProvideTextGenerator creates the generation client for the configured
// provider. It returns a nil client when the provider is unknown or has no
// credential, which leaves the service on its fallback lists.
func ProvideTextGenerator(cfg config.GenerationConfig, logger *zap.Logger) (utils.TextGeneratorInterface, error) {
	switch {
	case cfg.Provider == "":
		logger.Info("no generation API key configured, serving fallback questions only")
		return nil, nil
	case !cfg.Supported():
		logger.Warn("unsupported generation provider, serving fallback questions only. Use 'openai', 'gemini' or 'anthropic'",
			zap.String("provider", cfg.Provider))
		return nil, nil
	case !cfg.Enabled():
		logger.Warn("generation provider selected without an API key, serving fallback questions only",
			zap.String("provider", cfg.Provider))
		return nil, nil
	}

	logger.Info("initializing generation client",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.Int("max_tokens", cfg.MaxTokens),
		zap.Duration("timeout", cfg.Timeout))

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return utils.NewOpenAITextClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	case config.ProviderGemini:
		return utils.NewGeminiTextClient(context.Background(), cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return utils.NewAnthropicTextClient(cfg.APIKey, cfg.Model)
	}
}
