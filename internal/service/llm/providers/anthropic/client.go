package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"devforge/internal/domain"
	agentModels "devforge/internal/domain/models/agent"
)

// defaultMaxTokens caps one reply. The Messages API requires an explicit
// limit on every request.
const defaultMaxTokens = 4096

// Client talks to the Anthropic Messages API.
type Client struct {
	api   *anthropic.Client
	model anthropic.Model
}

// NewClient creates an Anthropic client for the given model.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	if model == "" {
		return nil, errors.New("anthropic model is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &Client{
		api:   &client,
		model: anthropic.Model(model),
	}, nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "anthropic"
}

// buildParams converts the transcript and prompt pair to Messages API shape.
// The system prompt rides in the dedicated system field, not the message
// list; any transcript turn that is not from the assistant maps to a user
// message.
func (c *Client) buildParams(prompt agentModels.PromptPair, history []agentModels.Turn) anthropic.MessageNewParams {
	messages := make([]anthropic.MessageParam, 0, len(history)+1)

	for _, turn := range history {
		block := anthropic.NewTextBlock(turn.Text)
		if turn.Speaker == agentModels.SpeakerAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)))

	params := anthropic.MessageNewParams{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: defaultMaxTokens,
	}
	if prompt.System != "" {
		params.System = []anthropic.TextBlockParam{
			{
				Type: "text",
				Text: prompt.System,
			},
		}
	}

	return params
}

// Complete performs one blocking message creation.
func (c *Client) Complete(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (string, error) {
	msg, err := c.api.Messages.New(ctx, c.buildParams(prompt, history))
	if err != nil {
		return "", &domain.UpstreamError{Provider: c.Name(), Message: err.Error()}
	}

	var b strings.Builder
	for _, content := range msg.Content {
		if content.Type == "text" {
			b.WriteString(content.Text)
		}
	}

	return strings.TrimSpace(b.String()), nil
}

// CompleteStream performs one streaming message creation, emitting text
// deltas as they arrive.
func (c *Client) CompleteStream(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (<-chan agentModels.StreamChunk, error) {
	stream := c.api.Messages.NewStreaming(ctx, c.buildParams(prompt, history))

	out := make(chan agentModels.StreamChunk)

	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		for stream.Next() {
			event := stream.Current()

			switch e := event.AsAny().(type) {
			case anthropic.ContentBlockDeltaEvent:
				if e.Delta.Type != "text_delta" || e.Delta.Text == "" {
					continue
				}
				if !c.emit(ctx, out, agentModels.StreamChunk{Content: e.Delta.Text}) {
					return
				}
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			c.emit(ctx, out, agentModels.StreamChunk{
				Err: &domain.UpstreamError{Provider: c.Name(), Message: err.Error()},
			})
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
