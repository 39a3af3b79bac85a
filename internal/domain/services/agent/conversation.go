package agent

import (
	agentModels "devforge/internal/domain/models/agent"
)

// ConversationStore holds per-conversation transcripts. It is the only shared
// mutable state in the generation path, so implementations must be safe for
// concurrent use; operations on different ids must not block each other.
type ConversationStore interface {
	// Read returns the transcript for id in append order. Unknown ids yield
	// an empty result; Read never fails and never creates state.
	Read(id string) []agentModels.Turn

	// Append adds exactly one turn to the end of id's transcript, creating
	// the transcript on first use. Each append is atomic: concurrent
	// appends to the same id may land in either order but never interleave
	// partially or drop.
	Append(id string, speaker agentModels.Speaker, text string)

	// Clear removes the transcript for id. Clearing an unknown id is a
	// no-op.
	Clear(id string)
}
