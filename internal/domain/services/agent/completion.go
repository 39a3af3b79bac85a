package agent

import (
	"context"

	agentModels "devforge/internal/domain/models/agent"
)

// CompletionClient abstracts one remote text-completion capability. Providers
// with different wire shapes (OpenAI-compatible chat, Anthropic messages,
// single-prompt generate endpoints) all sit behind this contract so the
// orchestrators never see provider details.
type CompletionClient interface {
	// Complete sends history followed by the system/user prompt pair as the
	// ordered message list and blocks until the full response is available.
	// The returned text is trimmed. One attempt per call: transport
	// failures, non-2xx statuses, and malformed bodies surface as errors
	// matching domain.ErrUpstream and are never retried here.
	Complete(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (string, error)

	// CompleteStream opens one streaming completion and returns a finite
	// channel of chunks in upstream arrival order. Failures establishing
	// the stream are returned directly. After a successful open, a failure
	// mid-stream delivers exactly one chunk with Err set and then closes
	// the channel; no chunk follows an error chunk. A close without an
	// error chunk means the upstream signalled end of output. The stream
	// is not restartable.
	CompleteStream(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (<-chan agentModels.StreamChunk, error)

	// Name returns the provider name, e.g. "openaichat" or "ollama".
	Name() string
}
