package lorem

import (
	"context"
	"strings"
	"testing"

	agentModels "devforge/internal/domain/models/agent"
)

func TestCompleteReturnsText(t *testing.T) {
	p := NewProvider(0)

	reply, err := p.Complete(context.Background(), agentModels.PromptPair{User: "anything"}, nil)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if strings.TrimSpace(reply) == "" {
		t.Error("expected non-empty reply")
	}
}

func TestCompleteStreamDeliversWordsAndCloses(t *testing.T) {
	p := NewProvider(0)

	ch, err := p.CompleteStream(context.Background(), agentModels.PromptPair{User: "anything"}, nil)
	if err != nil {
		t.Fatalf("CompleteStream failed: %v", err)
	}

	var b strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("mock stream produced error chunk: %v", chunk.Err)
		}
		b.WriteString(chunk.Content)
	}

	if strings.TrimSpace(b.String()) == "" {
		t.Error("expected streamed text")
	}
	if strings.Contains(b.String(), "  ") {
		t.Error("word chunks reassembled with doubled spaces")
	}
}

func TestCompleteStreamStopsOnCancel(t *testing.T) {
	p := NewProvider(0)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.CompleteStream(ctx, agentModels.PromptPair{User: "anything"}, nil)
	if err != nil {
		t.Fatalf("CompleteStream failed: %v", err)
	}

	<-ch
	cancel()

	// The producer must notice the cancellation and close the channel.
	for range ch {
	}
}
