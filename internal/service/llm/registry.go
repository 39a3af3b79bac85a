package llm

import (
	"fmt"
	"sync"
	"time"

	"devforge/internal/config"
	agentSvc "devforge/internal/domain/services/agent"
	"devforge/internal/service/llm/providers/anthropic"
	"devforge/internal/service/llm/providers/lorem"
	"devforge/internal/service/llm/providers/ollama"
	"devforge/internal/service/llm/providers/openaichat"
)

// loremWordDelay paces the mock provider's stream so it looks like a real
// model instead of dumping the reply in one frame.
const loremWordDelay = 25 * time.Millisecond

// Registry lazily constructs completion clients by provider name and caches
// the instances. Construction validates config (API keys, model names), so a
// misconfigured provider fails on first use rather than at startup.
type Registry struct {
	cfg   *config.Config
	cache map[string]agentSvc.CompletionClient
	mu    sync.RWMutex
}

// NewRegistry creates a provider registry backed by the given config.
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		cfg:   cfg,
		cache: make(map[string]agentSvc.CompletionClient),
	}
}

// Client returns the completion client for the given provider name, creating
// and caching it on first request.
func (r *Registry) Client(name string) (agentSvc.CompletionClient, error) {
	if name == "" {
		return nil, fmt.Errorf("provider name cannot be empty")
	}

	// Fast path: cache hit under read lock.
	r.mu.RLock()
	if cached, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have built the client while we waited.
	if cached, ok := r.cache[name]; ok {
		return cached, nil
	}

	client, err := r.build(name)
	if err != nil {
		return nil, fmt.Errorf("create provider '%s': %w", name, err)
	}

	r.cache[name] = client
	return client, nil
}

func (r *Registry) build(name string) (agentSvc.CompletionClient, error) {
	switch name {
	case "openaichat":
		return openaichat.NewClient(r.cfg.OpenAIAPIKey, r.cfg.OpenAIBaseURL, r.cfg.ChatModel)
	case "anthropic":
		return anthropic.NewClient(r.cfg.AnthropicAPIKey, r.cfg.AnthropicModel)
	case "ollama":
		return ollama.NewClient(r.cfg.OllamaURL, r.cfg.OllamaModel)
	case "lorem":
		return lorem.NewProvider(loremWordDelay), nil
	default:
		return nil, fmt.Errorf("unknown provider")
	}
}
