package config

import (
	"context"
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LLM_MODEL", "LOCAL_REPORTS_DIR", "MOCKUP_MODE", "ENVIRONMENT"} {
		os.Unsetenv(key)
	}

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8990" {
		t.Errorf("Port = %q, want 8990", cfg.Port)
	}
	if cfg.LLMModel != "gemini-1.5-flash" {
		t.Errorf("LLMModel = %q", cfg.LLMModel)
	}
	if cfg.LocalReportsDir != "./reports" {
		t.Errorf("LocalReportsDir = %q", cfg.LocalReportsDir)
	}
	if cfg.MockupMode {
		t.Error("MockupMode should default to false")
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
}

func TestLoadOverrides(t *testing.T) {
	os.Setenv("PORT", "9001")
	os.Setenv("MOCKUP_MODE", "true")
	os.Setenv("WEATHER_API_KEY", "wk-test")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("MOCKUP_MODE")
		os.Unsetenv("WEATHER_API_KEY")
	}()

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9001" {
		t.Errorf("Port = %q, want 9001", cfg.Port)
	}
	if !cfg.MockupMode {
		t.Error("MockupMode should be true")
	}
	if cfg.WeatherAPIKey != "wk-test" {
		t.Errorf("WeatherAPIKey = %q", cfg.WeatherAPIKey)
	}
}
