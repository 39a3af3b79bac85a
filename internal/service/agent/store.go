package agent

import (
	"sync"

	agentModels "devforge/internal/domain/models/agent"
	agentSvc "devforge/internal/domain/services/agent"
)

// MemoryStore keeps conversation transcripts in process memory, keyed by an
// opaque caller-supplied conversation id. Transcripts are created lazily on
// first append, live for the process lifetime, and are removed only by Clear.
//
// One RWMutex guards the whole map: every operation is O(1)-ish and
// non-blocking, so a coarse lock keeps appends atomic without meaningful
// contention. Concurrent callers appending to the same id get no ordering
// guarantee beyond "each append lands whole"; callers that need strict turn
// order must serialize their own calls.
type MemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string][]agentModels.Turn
}

var _ agentSvc.ConversationStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty conversation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transcripts: make(map[string][]agentModels.Turn),
	}
}

// Read returns a snapshot of the transcript for id in append order. Unknown
// ids yield an empty result; reading never creates state.
func (s *MemoryStore) Read(id string) []agentModels.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.transcripts[id]
	if len(turns) == 0 {
		return nil
	}

	// Copy out so callers never alias the shared backing array.
	out := make([]agentModels.Turn, len(turns))
	copy(out, turns)
	return out
}

// Append adds one turn to the end of id's transcript, creating the transcript
// on first use.
func (s *MemoryStore) Append(id string, speaker agentModels.Speaker, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcripts[id] = append(s.transcripts[id], agentModels.Turn{
		Speaker: speaker,
		Text:    text,
	})
}

// Clear removes the transcript for id. Clearing an unknown id is a no-op.
func (s *MemoryStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.transcripts, id)
}
