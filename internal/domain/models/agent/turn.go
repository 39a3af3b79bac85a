package agent

// Speaker is the author of a transcript turn, mirroring chat-completion
// message roles.
type Speaker string

const (
	SpeakerSystem    Speaker = "system"
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one message in a conversation transcript. Turns carry no identity
// beyond their position: sequence is arrival order, append-only.
type Turn struct {
	Speaker Speaker `json:"role"`
	Text    string  `json:"content"`
}

// PromptPair is the (system, user) prompt string pair sent to the completion
// provider for one call. It is derived deterministically from the request and
// has no lifecycle beyond the call.
type PromptPair struct {
	System string
	User   string
}
