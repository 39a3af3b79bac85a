package llm

import (
	"fmt"
	"log/slog"

	"devforge/internal/config"
	agentSvc "devforge/internal/domain/services/agent"
)

// SetupProviders initializes the provider registry and resolves the default
// completion client from config. It logs which providers the current config
// can reach so a missing key is visible at startup, not on first request.
func SetupProviders(cfg *config.Config, logger *slog.Logger) (*Registry, agentSvc.CompletionClient, error) {
	registry := NewRegistry(cfg)

	if cfg.OpenAIAPIKey != "" {
		logger.Info("provider available", "name", "openaichat", "base_url", cfg.OpenAIBaseURL, "model", cfg.ChatModel)
	} else {
		logger.Warn("OPENAI_API_KEY not set - openaichat provider not available")
	}
	if cfg.AnthropicAPIKey != "" {
		logger.Info("provider available", "name", "anthropic", "model", cfg.AnthropicModel)
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set - anthropic provider not available")
	}
	logger.Info("provider available", "name", "ollama", "base_url", cfg.OllamaURL, "model", cfg.OllamaModel)
	logger.Info("provider available", "name", "lorem")

	client, err := registry.Client(cfg.DefaultProvider)
	if err != nil {
		return nil, nil, fmt.Errorf("default provider '%s' unavailable: %w", cfg.DefaultProvider, err)
	}

	logger.Info("default completion provider selected", "name", client.Name())

	return registry, client, nil
}
