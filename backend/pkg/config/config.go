package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	apperrors "repo-analyst/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// GitHub
	GitHubToken string

	// Tavily web search
	TavilyAPIKey string

	// Inference
	InferenceURL  string
	ModelID       string
	LLMAPIKey     string
	MaxToolRounds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		GitHubToken:   getEnv("GITHUB_TOKEN", ""),
		TavilyAPIKey:  getEnv("TAVILY_API_KEY", ""),
		InferenceURL:  getEnv("INFERENCE_URL", "http://localhost:4000"),
		ModelID:       getEnv("MODEL_ID", "ollama/llama3.2:3b"),
		LLMAPIKey:     getEnv("LLM_API_KEY", ""),
		MaxToolRounds: getEnvInt("MAX_TOOL_ROUNDS", 6),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.InferenceURL == "" {
		return apperrors.NewConfigMissingRequired("INFERENCE_URL")
	}
	if c.ModelID == "" {
		return apperrors.NewConfigMissingRequired("MODEL_ID")
	}
	if c.MaxToolRounds < 1 {
		return apperrors.NewConfigValidationFailed("MAX_TOOL_ROUNDS", "must be at least 1")
	}
	// GitHub token, Tavily key and LLM API key are optional
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
