package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"devforge/internal/domain"
	agentModels "devforge/internal/domain/models/agent"
	agentService "devforge/internal/service/agent"
)

// scriptedClient plays back a fixed completion script.
type scriptedClient struct {
	reply  string
	chunks []agentModels.StreamChunk
}

func (c *scriptedClient) Name() string { return "scripted" }

func (c *scriptedClient) Complete(context.Context, agentModels.PromptPair, []agentModels.Turn) (string, error) {
	return c.reply, nil
}

func (c *scriptedClient) CompleteStream(context.Context, agentModels.PromptPair, []agentModels.Turn) (<-chan agentModels.StreamChunk, error) {
	ch := make(chan agentModels.StreamChunk, len(c.chunks))
	for _, chunk := range c.chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

func newTestGenerateHandler(client *scriptedClient) (*GenerateHandler, *agentService.MemoryStore) {
	store := agentService.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := agentService.NewService(store, client, logger)
	return NewGenerateHandler(svc, 0, logger), store
}

func TestGenerateCodeReturnsJSONReply(t *testing.T) {
	h, store := newTestGenerateHandler(&scriptedClient{reply: "package main"})

	req := httptest.NewRequest("POST", "/api/generate/code",
		strings.NewReader(`{"description":"a CLI tool","conversation_id":"c1"}`))
	rec := httptest.NewRecorder()
	h.GenerateCode(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "package main") {
		t.Errorf("reply missing from body: %s", rec.Body.String())
	}
	if got := len(store.Read("c1")); got != 2 {
		t.Errorf("expected 2 transcript turns, got %d", got)
	}
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	h, _ := newTestGenerateHandler(&scriptedClient{reply: "x"})

	req := httptest.NewRequest("POST", "/api/generate/requirement",
		strings.NewReader(`{"topic":""}`))
	rec := httptest.NewRecorder()
	h.GenerateRequirement(rec, req)

	if rec.Code != 400 {
		t.Errorf("expected 400 for empty topic, got %d", rec.Code)
	}
}

func TestGenerateArchitectureSplitsResponse(t *testing.T) {
	h, _ := newTestGenerateHandler(&scriptedClient{
		reply: agentService.ArchitectureMarker + "\nlayers\n" + agentService.DatabaseMarker + "\nCREATE TABLE t (id int);",
	})

	req := httptest.NewRequest("POST", "/api/generate/architecture",
		strings.NewReader(`{"requirement":"an order system"}`))
	rec := httptest.NewRecorder()
	h.GenerateArchitecture(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"architecture":"layers"`) {
		t.Errorf("architecture section missing: %s", body)
	}
	if !strings.Contains(body, `"database_design":"CREATE TABLE t (id int);"`) {
		t.Errorf("database section missing: %s", body)
	}
}

func TestStreamingGenerateEmitsFramesThenDone(t *testing.T) {
	h, store := newTestGenerateHandler(&scriptedClient{
		chunks: []agentModels.StreamChunk{
			{Content: "func "},
			{Content: "main()"},
		},
	})

	req := httptest.NewRequest("POST", "/api/generate/code",
		strings.NewReader(`{"description":"a CLI tool","conversation_id":"c1","stream":true}`))
	rec := httptest.NewRecorder()
	h.GenerateCode(rec, req)

	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("expected SSE content type, got %q", got)
	}

	body := rec.Body.String()
	frames := []string{
		`data: {"content":"func "}`,
		`data: {"content":"main()"}`,
		`data: {"done":true}`,
	}
	pos := 0
	for _, frame := range frames {
		idx := strings.Index(body[pos:], frame)
		if idx < 0 {
			t.Fatalf("frame %q missing or out of order in:\n%s", frame, body)
		}
		pos += idx + len(frame)
	}

	// Clean end commits the transcript.
	turns := store.Read("c1")
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns after clean stream, got %d", len(turns))
	}
	if turns[1].Text != "func main()" {
		t.Errorf("assistant turn mismatch: %q", turns[1].Text)
	}
}

func TestStreamingGenerateErrorFrameEndsStream(t *testing.T) {
	h, store := newTestGenerateHandler(&scriptedClient{
		chunks: []agentModels.StreamChunk{
			{Content: "partial"},
			{Err: &domain.UpstreamError{Provider: "scripted", Message: "connection reset"}},
		},
	})

	req := httptest.NewRequest("POST", "/api/generate/tests",
		strings.NewReader(`{"code":"func add(a, b int) int","conversation_id":"c1","stream":true}`))
	rec := httptest.NewRecorder()
	h.GenerateTests(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `"error"`) {
		t.Errorf("expected error frame, got:\n%s", body)
	}
	if strings.Contains(body, `"done"`) {
		t.Errorf("done frame must not follow an error frame:\n%s", body)
	}
	if got := len(store.Read("c1")); got != 0 {
		t.Errorf("failed stream must not touch history, got %d turns", got)
	}
}
