package llm

import (
	"testing"

	"devforge/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: "https://api.deepseek.com/v1",
		ChatModel:     "deepseek-chat",
		OllamaURL:     "http://localhost:11434",
		OllamaModel:   "llama3",
	}
}

func TestClientIsCached(t *testing.T) {
	registry := NewRegistry(testConfig())

	first, err := registry.Client("lorem")
	if err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	second, err := registry.Client("lorem")
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}

	if first != second {
		t.Error("expected the cached instance on repeat lookup")
	}
}

func TestUnknownProviderRejected(t *testing.T) {
	registry := NewRegistry(testConfig())

	if _, err := registry.Client("gpt4all"); err == nil {
		t.Error("expected error for unknown provider name")
	}
	if _, err := registry.Client(""); err == nil {
		t.Error("expected error for empty provider name")
	}
}

func TestMisconfiguredProviderFailsOnLookup(t *testing.T) {
	cfg := testConfig()
	cfg.AnthropicAPIKey = ""
	registry := NewRegistry(cfg)

	if _, err := registry.Client("anthropic"); err == nil {
		t.Error("expected error when the provider API key is missing")
	}
}

func TestConfiguredProvidersResolve(t *testing.T) {
	registry := NewRegistry(testConfig())

	for _, name := range []string{"openaichat", "ollama", "lorem"} {
		client, err := registry.Client(name)
		if err != nil {
			t.Errorf("provider %s: %v", name, err)
			continue
		}
		if client.Name() != name {
			t.Errorf("provider %s reports name %s", name, client.Name())
		}
	}
}
