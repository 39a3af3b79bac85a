package lorem

import (
	"context"
	"strings"
	"time"

	loremgen "github.com/bozaro/golorem"

	agentModels "devforge/internal/domain/models/agent"
)

// Provider is a mock completion provider that generates lorem ipsum text.
// It needs no API key, so it serves development and demos where no real
// provider is configured.
type Provider struct {
	generator *loremgen.Lorem
	delay     time.Duration
}

// NewProvider creates a lorem provider. delay is the pause between streamed
// words; zero streams as fast as the consumer reads.
func NewProvider(delay time.Duration) *Provider {
	return &Provider{
		generator: loremgen.New(),
		delay:     delay,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// Complete returns a few paragraphs of filler text. Inputs only steer the
// reply length a little so transcripts still look conversational.
func (p *Provider) Complete(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.generate(prompt), nil
}

// CompleteStream streams the same filler text word by word.
func (p *Provider) CompleteStream(ctx context.Context, prompt agentModels.PromptPair, history []agentModels.Turn) (<-chan agentModels.StreamChunk, error) {
	text := p.generate(prompt)
	words := strings.Fields(text)

	out := make(chan agentModels.StreamChunk)

	go func() {
		defer close(out)

		for i, word := range words {
			delta := word
			if i < len(words)-1 {
				delta += " "
			}

			select {
			case out <- agentModels.StreamChunk{Content: delta}:
			case <-ctx.Done():
				return
			}

			if p.delay > 0 {
				select {
				case <-time.After(p.delay):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (p *Provider) generate(prompt agentModels.PromptPair) string {
	paragraphs := 2
	if len(prompt.User) > 200 {
		paragraphs = 3
	}

	parts := make([]string, 0, paragraphs)
	for i := 0; i < paragraphs; i++ {
		parts = append(parts, p.generator.Paragraph(3, 5))
	}
	return strings.Join(parts, "\n\n")
}
