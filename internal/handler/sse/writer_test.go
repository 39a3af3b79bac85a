package sse

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewWriterSetsStreamingHeaders(t *testing.T) {
	rec := httptest.NewRecorder()

	if _, err := NewWriter(rec); err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	headers := map[string]string{
		"Content-Type":      "text/event-stream",
		"Cache-Control":     "no-cache",
		"X-Accel-Buffering": "no",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("header %s: expected %q, got %q", name, want, got)
		}
	}
}

func TestFrameFormats(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := w.WriteContent("hello"); err != nil {
		t.Fatalf("WriteContent failed: %v", err)
	}
	if err := w.WriteError("upstream gone"); err != nil {
		t.Fatalf("WriteError failed: %v", err)
	}
	if err := w.WriteDone(); err != nil {
		t.Fatalf("WriteDone failed: %v", err)
	}

	want := "data: {\"content\":\"hello\"}\n\n" +
		"data: {\"error\":\"upstream gone\"}\n\n" +
		"data: {\"done\":true}\n\n"
	if got := rec.Body.String(); got != want {
		t.Errorf("frame layout mismatch:\nexpected %q\ngot      %q", want, got)
	}
}

func TestContentIsJSONEscaped(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	// Newlines in a delta must not break the one-line data framing.
	if err := w.WriteContent("line one\nline two"); err != nil {
		t.Fatalf("WriteContent failed: %v", err)
	}

	body := rec.Body.String()
	if strings.Count(body, "data: ") != 1 {
		t.Errorf("multi-line delta split into multiple frames:\n%q", body)
	}
	if !strings.Contains(body, `\n`) {
		t.Errorf("newline not escaped in payload:\n%q", body)
	}
}

func TestKeepAliveIsComment(t *testing.T) {
	rec := httptest.NewRecorder()
	w, err := NewWriter(rec)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := w.WriteKeepAlive(); err != nil {
		t.Fatalf("WriteKeepAlive failed: %v", err)
	}
	if got := rec.Body.String(); got != ": keepalive\n\n" {
		t.Errorf("unexpected keepalive frame: %q", got)
	}
}
