// Package config loads service configuration from environment variables.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the FarmBot service.
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8990"`

	// LLM configuration. The chat model is reached through an
	// OpenAI-compatible endpoint; Gemini's compatibility layer by default.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	LLMBaseURL   string `env:"LLM_BASE_URL,default=https://generativelanguage.googleapis.com/v1beta/openai"`
	LLMModel     string `env:"LLM_MODEL,default=gemini-1.5-flash"`

	// Weather configuration (WeatherAPI.com). Optional: lookups degrade to a
	// structured error when the key is missing.
	WeatherAPIKey string `env:"WEATHER_API_KEY"`

	// Sentinel Hub configuration for satellite composites.
	SentinelClientID     string `env:"SENTINEL_CLIENT_ID"`
	SentinelClientSecret string `env:"SENTINEL_CLIENT_SECRET"`

	// Agromet advisory RSS feed.
	AdvisoryFeedURL string `env:"ADVISORY_FEED_URL,default=https://reliefweb.int/updates/rss.xml?advanced-search=%28C182%29"`

	// GCP configuration (optional for local deployments)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local deployment configuration
	LocalReportsDir string `env:"LOCAL_REPORTS_DIR,default=./reports"`
	MockupMode      bool   `env:"MOCKUP_MODE,default=false"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
