package agent

// Role identifies which specialist persona answers a generation request.
// The set is closed; wire strings outside it parse to RoleUnknown.
type Role string

const (
	RoleAnalyst   Role = "analyst"
	RoleArchitect Role = "architect"
	RoleDeveloper Role = "developer"
	RoleTester    Role = "tester"

	// RoleUnknown is the fallback for unrecognized role strings. Requests
	// carrying it still succeed with a generic assistant prompt.
	RoleUnknown Role = "unknown"
)

// ParseRole maps a wire string to a Role. Unrecognized values degrade to
// RoleUnknown instead of erroring; prompt assembly has a dedicated arm for it.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAnalyst, RoleArchitect, RoleDeveloper, RoleTester:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Mode selects the prompting strategy for a generation request.
type Mode string

const (
	// ModeSingleChat is a one-on-one task: the role produces a full
	// artifact (requirement doc, architecture brief, code, tests) from a
	// single input.
	ModeSingleChat Mode = "single_chat"

	// ModeMeetingRoom is a multi-party session turn: the role responds to
	// the running discussion, optionally seeded with other participants'
	// statements as context.
	ModeMeetingRoom Mode = "meeting_room"

	// ModeMeetingSummary asks the role to distill a finished session into
	// the agreed-upon outcome.
	ModeMeetingSummary Mode = "meeting_summary"
)

// ParseMode maps a wire string to a Mode, defaulting to ModeSingleChat for
// unrecognized values.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeSingleChat, ModeMeetingRoom, ModeMeetingSummary:
		return Mode(s)
	default:
		return ModeSingleChat
	}
}
