package config

import "time"

// Input limits enforced by the service layer validators.
const (
	MaxUsernameLength         = 50
	MaxEmailLength            = 100
	MaxRequirementTitleLength = 200
	MaxTaskNameLength         = 100
	MaxDocumentTitleLength    = 255

	// MaxGenerationInputLength bounds the free-text input to a generation
	// request. Large enough for a pasted module, small enough to reject
	// accidental file dumps.
	MaxGenerationInputLength = 100_000
)

// DefaultStreamPace is the delay between streamed content frames when
// STREAM_PACE is not set. Keeps slow clients responsive without affecting
// correctness.
const DefaultStreamPace = 10 * time.Millisecond
