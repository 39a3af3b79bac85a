package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	TablePrefix string
	CORSOrigins string
	// Auth
	JWTSecret string
	TokenTTL  time.Duration
	// LLM configuration
	DefaultProvider string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	ChatModel       string
	AnthropicAPIKey string
	AnthropicModel  string
	OllamaURL       string
	OllamaModel     string
	// StreamPace is the fixed delay inserted between streamed content
	// frames. Flow-control only; zero disables pacing.
	StreamPace time.Duration
	// LogDir, when set, mirrors logs to timestamped files under this
	// directory in addition to stdout.
	LogDir string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		TablePrefix: getTablePrefix(env),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		// Auth
		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),
		// LLM configuration
		DefaultProvider: getEnv("DEFAULT_PROVIDER", "openaichat"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", os.Getenv("DEEPSEEK_API_KEY")),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.deepseek.com/v1"),
		ChatModel:       getEnv("CHAT_MODEL", "deepseek-chat"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
		OllamaURL:       getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3"),
		StreamPace:      getDuration("STREAM_PACE", DefaultStreamPace),
		LogDir:          getEnv("LOG_DIR", ""),
		// Debug - default to true outside prod
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses an environment variable holding either a Go duration
// string ("10ms") or a bare millisecond count.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
