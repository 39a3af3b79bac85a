package agent

// StreamChunk is one unit of incremental output from a streaming completion:
// a text delta, or a terminal error. A chunk with Err set is always the last
// chunk of its stream; a stream that closes without one ended cleanly.
type StreamChunk struct {
	Content string
	Err     error
}
