package sse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Writer emits Server-Sent Events frames for one streaming generation. Every
// frame is a single data line carrying a JSON object; the client tells the
// frame kinds apart by their field, not by SSE event names.
type Writer struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewWriter prepares the response for event streaming and returns a frame
// writer. It fails when the underlying writer cannot flush, which means the
// server stack would buffer the whole stream.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	return &Writer{w: w, flusher: flusher}, nil
}

type contentFrame struct {
	Content string `json:"content"`
}

type errorFrame struct {
	Error string `json:"error"`
}

type doneFrame struct {
	Done bool `json:"done"`
}

// WriteContent sends one text delta.
func (s *Writer) WriteContent(text string) error {
	return s.writeFrame(contentFrame{Content: text})
}

// WriteError sends a terminal error frame. No frame may follow it.
func (s *Writer) WriteError(message string) error {
	return s.writeFrame(errorFrame{Error: message})
}

// WriteDone sends the terminal frame of a clean stream.
func (s *Writer) WriteDone() error {
	return s.writeFrame(doneFrame{Done: true})
}

// WriteKeepAlive writes an SSE comment line. Clients ignore comments; the
// line only keeps idle proxies from dropping the connection while the model
// works on its first token.
func (s *Writer) WriteKeepAlive() error {
	if _, err := fmt.Fprint(s.w, ": keepalive\n\n"); err != nil {
		return fmt.Errorf("write keepalive failed: %w", err)
	}
	s.flusher.Flush()
	return nil
}

func (s *Writer) writeFrame(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal frame failed: %w", err)
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("write frame failed: %w", err)
	}
	s.flusher.Flush()
	return nil
}
