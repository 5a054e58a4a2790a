// Package config reads runtime settings from the environment once at startup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	Generation GenerationConfig
}

// GenerationConfig gates the model-backed path. An empty APIKey disables it.
type GenerationConfig struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
	Timeout   time.Duration
}

func (g GenerationConfig) Enabled() bool {
	return g.APIKey != ""
}

// Supported reports whether Provider names a known provider. An empty
// Provider means none was selected or discovered.
func (g GenerationConfig) Supported() bool {
	_, ok := defaultModels[g.Provider]
	return ok
}

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o",
	ProviderGemini:    "gemini-1.5-flash",
	ProviderAnthropic: "claude-3-5-haiku-latest",
}

// Load reads env vars and applies defaults. Missing credentials never fail;
// they only leave generation disabled.
func Load() AppConfig {
	return AppConfig{
		Port:       getEnvWithDefault("PORT", "8080"),
		Env:        getEnvWithDefault("APP_ENV", "development"),
		LogLevel:   getEnvWithDefault("LOG_LEVEL", "info"),
		Generation: loadGeneration(),
	}
}

func loadGeneration() GenerationConfig {
	cfg := GenerationConfig{
		Provider:  strings.ToLower(strings.TrimSpace(os.Getenv("GENERATION_PROVIDER"))),
		MaxTokens: getEnvInt("GENERATION_MAX_TOKENS", 100),
		Timeout:   getEnvDuration("GENERATION_TIMEOUT", 8*time.Second),
	}

	if cfg.Provider == "" {
		cfg.Provider = discoverProvider()
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model = getEnvWithDefault("OPENAI_MODEL", defaultModels[ProviderOpenAI])
		cfg.BaseURL = os.Getenv("OPENAI_BASE_URL")
	case ProviderGemini:
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.Model = getEnvWithDefault("GEMINI_MODEL", defaultModels[ProviderGemini])
		cfg.BaseURL = os.Getenv("GEMINI_BASE_URL")
	case ProviderAnthropic:
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		cfg.Model = getEnvWithDefault("ANTHROPIC_MODEL", defaultModels[ProviderAnthropic])
	}

	return cfg
}

// discoverProvider picks the first provider whose key is set, OpenAI first.
func discoverProvider() string {
	switch {
	case os.Getenv("OPENAI_API_KEY") != "":
		return ProviderOpenAI
	case os.Getenv("GEMINI_API_KEY") != "":
		return ProviderGemini
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		return ProviderAnthropic
	}
	return ""
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
