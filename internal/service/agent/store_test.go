package agent

import (
	"fmt"
	"sync"
	"testing"

	agentModels "devforge/internal/domain/models/agent"
)

func TestReadUnknownIDReturnsEmpty(t *testing.T) {
	store := NewMemoryStore()

	if turns := store.Read("nope"); len(turns) != 0 {
		t.Errorf("expected empty transcript for unknown id, got %d turns", len(turns))
	}

	// Reading must not create state visible to a later read.
	store.Append("other", agentModels.SpeakerUser, "hi")
	if turns := store.Read("nope"); len(turns) != 0 {
		t.Errorf("expected unknown id to stay empty, got %d turns", len(turns))
	}
}

func TestAppendOrder(t *testing.T) {
	store := NewMemoryStore()

	store.Append("c1", agentModels.SpeakerUser, "first")
	store.Append("c1", agentModels.SpeakerAssistant, "second")
	store.Append("c1", agentModels.SpeakerUser, "third")

	turns := store.Read("c1")
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	want := []string{"first", "second", "third"}
	for i, text := range want {
		if turns[i].Text != text {
			t.Errorf("turn %d: expected %q, got %q", i, text, turns[i].Text)
		}
	}
}

func TestIsolationBetweenConversations(t *testing.T) {
	store := NewMemoryStore()

	store.Append("c1", agentModels.SpeakerUser, "for c1")
	if turns := store.Read("c2"); len(turns) != 0 {
		t.Errorf("append to c1 leaked into c2: %d turns", len(turns))
	}
}

func TestClearSemantics(t *testing.T) {
	store := NewMemoryStore()

	// Clearing an id that never existed is a no-op, not an error.
	store.Clear("never")

	store.Append("c1", agentModels.SpeakerUser, "hello")
	store.Clear("c1")
	if turns := store.Read("c1"); len(turns) != 0 {
		t.Errorf("expected empty transcript after clear, got %d turns", len(turns))
	}

	// Clear is idempotent.
	store.Clear("c1")
}

func TestReadReturnsSnapshot(t *testing.T) {
	store := NewMemoryStore()
	store.Append("c1", agentModels.SpeakerUser, "original")

	turns := store.Read("c1")
	turns[0].Text = "mutated"

	if got := store.Read("c1")[0].Text; got != "original" {
		t.Errorf("caller mutation leaked into store: %q", got)
	}
}

func TestConcurrentAppendsDoNotDrop(t *testing.T) {
	store := NewMemoryStore()

	const writers = 50
	const appendsPerWriter = 20

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < appendsPerWriter; i++ {
				store.Append("shared", agentModels.SpeakerUser, fmt.Sprintf("w%d-%d", w, i))
				store.Append(fmt.Sprintf("own-%d", w), agentModels.SpeakerAssistant, "x")
			}
		}(w)
	}
	wg.Wait()

	if got := len(store.Read("shared")); got != writers*appendsPerWriter {
		t.Errorf("expected %d turns on shared id, got %d", writers*appendsPerWriter, got)
	}
	for w := 0; w < writers; w++ {
		if got := len(store.Read(fmt.Sprintf("own-%d", w))); got != appendsPerWriter {
			t.Errorf("expected %d turns on own-%d, got %d", appendsPerWriter, w, got)
		}
	}
}
