package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("GENERATION_TIMEOUT_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.OutputDir != "output" {
		t.Fatalf("OutputDir = %q, want output", cfg.OutputDir)
	}
	if cfg.GenerationTimeout != 120*time.Second {
		t.Fatalf("GenerationTimeout = %v, want 120s", cfg.GenerationTimeout)
	}
	if cfg.UseOpenRouter() {
		t.Fatalf("UseOpenRouter should be false without credentials")
	}
	if cfg.ProviderAPIKey() != "" {
		t.Fatalf("ProviderAPIKey should be empty without credentials")
	}
}

func TestLoadConfigPrefersOpenRouter(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	t.Setenv("OPENROUTER_BASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.UseOpenRouter() {
		t.Fatalf("UseOpenRouter should be true with an OpenRouter key")
	}
	if cfg.ProviderAPIKey() != "sk-or" {
		t.Fatalf("ProviderAPIKey = %q, want sk-or", cfg.ProviderAPIKey())
	}
	if cfg.ProviderBaseURL() != "https://openrouter.ai/api/v1" {
		t.Fatalf("ProviderBaseURL = %q", cfg.ProviderBaseURL())
	}
}

func TestLoadConfigOpenAIOnly(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.UseOpenRouter() {
		t.Fatalf("UseOpenRouter should be false without an OpenRouter key")
	}
	if cfg.ProviderAPIKey() != "sk-openai" {
		t.Fatalf("ProviderAPIKey = %q, want sk-openai", cfg.ProviderAPIKey())
	}
	if cfg.ProviderBaseURL() != "https://api.openai.com/v1" {
		t.Fatalf("ProviderBaseURL = %q", cfg.ProviderBaseURL())
	}
}

func TestLoadConfigParallelFlag(t *testing.T) {
	t.Setenv("PARALLEL_GENERATION", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.ParallelGeneration {
		t.Fatalf("ParallelGeneration should honor PARALLEL_GENERATION=true")
	}
}
