package openaichat

import (
	"context"
	"errors"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"devforge/internal/domain"
	agentModels "devforge/internal/domain/models/agent"
)

// Client talks to any endpoint speaking the OpenAI chat completions wire
// format. DeepSeek, OpenAI, and most self-hosted gateways share this shape,
// so one client covers all of them; only the base URL and model differ.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a chat completions client. baseURL may be empty, which
// keeps the SDK default endpoint.
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("chat completions API key is required")
	}
	if model == "" {
		return nil, errors.New("chat completions model is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}, nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "openaichat"
}

// buildMessages lays out the wire message list: prior transcript turns in
// order, then the system prompt, then the new user prompt.
func (c *Client) buildMessages(prompt agentModels.PromptPair, history []agentModels.Turn) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)

	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Speaker),
			Content: turn.Text,
		})
	}

	messages = append(messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt.User},
	)

	return messages
}

// Complete performs one blocking chat completion.
func (c *Client) Complete(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: c.buildMessages(prompt, history),
	})
	if err != nil {
		return "", &domain.UpstreamError{Provider: c.Name(), Message: err.Error()}
	}

	if len(resp.Choices) == 0 {
		return "", &domain.UpstreamError{Provider: c.Name(), Message: "response contained no choices"}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// CompleteStream performs one streaming chat completion, emitting content
// deltas as they arrive.
func (c *Client) CompleteStream(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (<-chan agentModels.StreamChunk, error) {
	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: c.buildMessages(prompt, history),
	})
	if err != nil {
		return nil, &domain.UpstreamError{Provider: c.Name(), Message: err.Error()}
	}

	out := make(chan agentModels.StreamChunk)

	go func() {
		defer close(out)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.emit(ctx, out, agentModels.StreamChunk{
					Err: &domain.UpstreamError{Provider: c.Name(), Message: err.Error()},
				})
				return
			}

			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}

			if !c.emit(ctx, out, agentModels.StreamChunk{Content: delta}) {
				return
			}
		}
	}()

	return out, nil
}

func (c *Client) emit(ctx context.Context, out chan<- agentModels.StreamChunk, chunk agentModels.StreamChunk) bool {
	select {
	case out <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
