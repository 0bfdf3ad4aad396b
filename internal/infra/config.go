package infra

import (
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenRouterAPIKey   string
	OpenRouterBaseURL  string
	OutputDir          string
	GenerationTimeout  time.Duration
	ParallelGeneration bool
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. No provider credential is required; without one the
// service runs against the mock backend.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:  getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OutputDir:          getEnv("OUTPUT_DIR", "output"),
		GenerationTimeout:  time.Second * time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 120)),
		ParallelGeneration: getEnvBool("PARALLEL_GENERATION", false),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 180)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}
	return cfg, nil
}

// UseOpenRouter reports whether requests should route through OpenRouter.
// OpenRouter credentials win when both providers are configured, since only
// OpenRouter reaches every cataloged model.
func (c *Config) UseOpenRouter() bool {
	return c.OpenRouterAPIKey != ""
}

// ProviderAPIKey returns the credential for the selected routing mode, empty
// when neither provider is configured.
func (c *Config) ProviderAPIKey() string {
	if c.UseOpenRouter() {
		return c.OpenRouterAPIKey
	}
	return c.OpenAIAPIKey
}

// ProviderBaseURL returns the API root for the selected routing mode.
func (c *Config) ProviderBaseURL() string {
	if c.UseOpenRouter() {
		return c.OpenRouterBaseURL
	}
	return c.OpenAIBaseURL
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
