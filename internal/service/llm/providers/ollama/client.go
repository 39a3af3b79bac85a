package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"devforge/internal/domain"
	agentModels "devforge/internal/domain/models/agent"
)

// Client talks to a local Ollama daemon over its /api/generate endpoint.
// The endpoint takes a single prompt rather than a message list, so prior
// transcript turns are folded into the prompt text.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates an Ollama client. Requests carry no fixed timeout;
// generation time is bounded by the caller's context.
func NewClient(baseURL, model string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("ollama base URL is required")
	}
	if model == "" {
		return nil, errors.New("ollama model is required")
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{},
	}, nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "ollama"
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

// generateResponse is one /api/generate body: the whole reply when not
// streaming, or one NDJSON line of it when streaming.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

// foldHistory flattens transcript turns into a labelled dialogue prefix so a
// single-prompt endpoint still sees the conversation so far.
func foldHistory(history []agentModels.Turn, userPrompt string) string {
	if len(history) == 0 {
		return userPrompt
	}

	var b strings.Builder
	for _, turn := range history {
		b.WriteString(string(turn.Speaker))
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(userPrompt)
	return b.String()
}

// Complete performs one blocking generation.
func (c *Client) Complete(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (string, error) {
	resp, err := c.post(ctx, generateRequest{
		Model:  c.model,
		Prompt: foldHistory(history, prompt.User),
		System: prompt.System,
		Stream: false,
	})
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.UpstreamError{Provider: c.Name(), Message: fmt.Sprintf("read response: %v", err)}
	}

	var gen generateResponse
	if err := json.Unmarshal(body, &gen); err != nil {
		return "", &domain.UpstreamError{Provider: c.Name(), Message: fmt.Sprintf("parse response: %v", err)}
	}
	if gen.Error != "" {
		return "", &domain.UpstreamError{Provider: c.Name(), Message: gen.Error}
	}

	return strings.TrimSpace(gen.Response), nil
}

// CompleteStream performs one streaming generation. Ollama streams NDJSON,
// one generateResponse object per line, ending with a done:true line.
func (c *Client) CompleteStream(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (<-chan agentModels.StreamChunk, error) {
	resp, err := c.post(ctx, generateRequest{
		Model:  c.model,
		Prompt: foldHistory(history, prompt.User),
		System: prompt.System,
		Stream: true,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan agentModels.StreamChunk)

	go func() {
		defer close(out)
		defer func() { _ = resp.Body.Close() }()

		scanner := bufio.NewScanner(resp.Body)
		// A single line carries one delta, but error lines can embed long
		// model output; allow up to 1 MiB per line.
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			var gen generateResponse
			if err := json.Unmarshal(line, &gen); err != nil {
				c.emit(ctx, out, agentModels.StreamChunk{
					Err: &domain.UpstreamError{Provider: c.Name(), Message: fmt.Sprintf("parse stream line: %v", err)},
				})
				return
			}
			if gen.Error != "" {
				c.emit(ctx, out, agentModels.StreamChunk{
					Err: &domain.UpstreamError{Provider: c.Name(), Message: gen.Error},
				})
				return
			}

			if gen.Response != "" {
				if !c.emit(ctx, out, agentModels.StreamChunk{Content: gen.Response}) {
					return
				}
			}
			if gen.Done {
				return
			}
		}

		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			c.emit(ctx, out, agentModels.StreamChunk{
				Err: &domain.UpstreamError{Provider: c.Name(), Message: fmt.Sprintf("read stream: %v", err)},
			})
		}
	}()

	return out, nil
}

// post issues the generate request and verifies the HTTP status. The caller
// owns the response body on success.
func (c *Client) post(ctx context.Context, payload generateRequest) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: c.Name(), Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		_ = resp.Body.Close()
		return nil, &domain.UpstreamError{
			Provider: c.Name(),
			Message:  fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		}
	}

	return resp, nil
}

func (c *Client) emit(ctx context.Context, out chan<- agentModels.StreamChunk, chunk agentModels.StreamChunk) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
