package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port   string
	DBPath string

	// omeda.city upstream
	OmedaBaseURL string
	OmedaTimeout time.Duration

	// AI provider
	AIProvider string // "openai" (default) or "anthropic"
	LLMTimeout time.Duration

	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string

	AnthropicBaseURL string
	AnthropicAPIKey  string
	AnthropicModel   string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data.db"
	}

	omedaBase := os.Getenv("OMEDA_BASE_URL")
	if omedaBase == "" {
		omedaBase = "https://omeda.city"
	}

	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	openAIBase := os.Getenv("OPENAI_BASE_URL")
	if openAIBase == "" {
		openAIBase = "https://api.openai.com/v1"
	}
	openAIModel := os.Getenv("OPENAI_MODEL")
	if openAIModel == "" {
		openAIModel = "gpt-4o"
	}

	anthropicBase := os.Getenv("ANTHROPIC_BASE_URL")
	if anthropicBase == "" {
		anthropicBase = "https://api.anthropic.com/v1"
	}
	anthropicModel := os.Getenv("CLAUDE_MODEL")
	if anthropicModel == "" {
		anthropicModel = "claude-sonnet-4-5-20250929"
	}

	return Config{
		Port:   port,
		DBPath: dbPath,

		OmedaBaseURL: omedaBase,
		OmedaTimeout: secondsEnv("OMEDA_TIMEOUT_SECONDS", 30),

		AIProvider: provider,
		LLMTimeout: secondsEnv("LLM_TIMEOUT_SECONDS", 90),

		OpenAIBaseURL: openAIBase,
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   openAIModel,

		AnthropicBaseURL: anthropicBase,
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   anthropicModel,
	}
}

func secondsEnv(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
