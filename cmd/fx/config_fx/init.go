package config_fx

import (
	"ember/internal/config"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	config.Load,
	provideGenerationConfig)

func provideGenerationConfig(cfg config.AppConfig) config.GenerationConfig {
	return cfg.Generation
}
