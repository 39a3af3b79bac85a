package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"

	agentModels "devforge/internal/domain/models/agent"
)

// Stream is one in-flight streaming generation. The consumer forwards Chunks
// to the client and, once the channel has closed, calls Finalize to commit
// the accumulated reply to the conversation transcript.
//
// Producing chunks and committing history are deliberately separate phases:
// Finalize appends nothing unless the stream ended cleanly, so an error chunk
// or an abandoned stream leaves the transcript untouched and the partial
// buffer is discarded.
type Stream struct {
	// Chunks delivers upstream deltas in arrival order. A chunk with Err
	// set is always the last one. The channel closes when the stream ends,
	// cleanly or not.
	Chunks <-chan agentModels.StreamChunk

	finalizeOnce sync.Once
	finalize     func()
}

// Finalize appends the (user prompt, assistant reply) turn pair to the
// conversation transcript. Call it only after Chunks has closed; it is
// idempotent, and a no-op if the stream carried an error chunk or was
// cancelled before the upstream finished.
func (st *Stream) Finalize() {
	st.finalizeOnce.Do(st.finalize)
}

// stream runs the streaming pipeline. It re-emits upstream chunks unchanged
// while accumulating the content deltas; the accumulated buffer becomes the
// assistant turn when the consumer finalizes a cleanly ended stream.
func (s *Service) stream(ctx context.Context, role agentModels.Role, mode agentModels.Mode, input, meetingContext, conversationID string) (*Stream, error) {
	id := s.resolveConversation(conversationID)
	history := s.store.Read(id)
	prompt := Assemble(role, mode, input, meetingContext)

	upstream, err := s.client.CompleteStream(ctx, prompt, history)
	if err != nil {
		return nil, fmt.Errorf("open %s stream: %w", role, err)
	}

	out := make(chan agentModels.StreamChunk)

	var buf strings.Builder
	failed := false

	go func() {
		defer close(out)

		for {
			select {
			case chunk, ok := <-upstream:
				if !ok {
					return
				}

				if chunk.Err != nil {
					failed = true
					buf.Reset()
				} else {
					buf.WriteString(chunk.Content)
				}

				select {
				case out <- chunk:
				case <-ctx.Done():
					failed = true
					return
				}

			case <-ctx.Done():
				// Caller disconnected: stop consuming upstream and
				// make sure a late Finalize commits nothing.
				failed = true
				return
			}
		}
	}()

	st := &Stream{Chunks: out}
	st.finalize = func() {
		// failed is written only by the pump goroutine, which has exited
		// by the time Chunks is closed; the channel close orders the
		// accesses.
		if failed || ctx.Err() != nil {
			s.logger.Debug("stream discarded without history append",
				"role", role,
				"conversation_id", id,
			)
			return
		}

		s.store.Append(id, agentModels.SpeakerUser, prompt.User)
		s.store.Append(id, agentModels.SpeakerAssistant, strings.TrimSpace(buf.String()))

		s.logger.Debug("stream finalized",
			"role", role,
			"mode", mode,
			"conversation_id", id,
			"reply_chars", buf.Len(),
		)
	}

	return st, nil
}
