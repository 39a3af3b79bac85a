package agent

import (
	"strings"
	"testing"

	agentModels "devforge/internal/domain/models/agent"
)

func TestAssembleIsDeterministic(t *testing.T) {
	a := Assemble(agentModels.RoleAnalyst, agentModels.ModeSingleChat, "login module", "")
	b := Assemble(agentModels.RoleAnalyst, agentModels.ModeSingleChat, "login module", "")

	if a != b {
		t.Errorf("identical inputs produced different prompt pairs:\n%+v\n%+v", a, b)
	}
}

func TestAssembleAllRolesAndModesNonEmpty(t *testing.T) {
	roles := []agentModels.Role{
		agentModels.RoleAnalyst,
		agentModels.RoleArchitect,
		agentModels.RoleDeveloper,
		agentModels.RoleTester,
		agentModels.RoleUnknown,
	}
	modes := []agentModels.Mode{
		agentModels.ModeSingleChat,
		agentModels.ModeMeetingRoom,
		agentModels.ModeMeetingSummary,
	}

	for _, role := range roles {
		for _, mode := range modes {
			pair := Assemble(role, mode, "payments module", "")
			if pair.System == "" {
				t.Errorf("role %s mode %s: empty system prompt", role, mode)
			}
			if pair.User == "" {
				t.Errorf("role %s mode %s: empty user prompt", role, mode)
			}
		}
	}
}

func TestAssembleUnknownRoleFallsBack(t *testing.T) {
	role := agentModels.ParseRole("project_manager")
	if role != agentModels.RoleUnknown {
		t.Fatalf("expected RoleUnknown, got %s", role)
	}

	pair := Assemble(role, agentModels.ModeSingleChat, "some input", "")
	if pair.System != fallbackSystemPrompt {
		t.Errorf("expected fallback system prompt, got %q", pair.System)
	}
	if pair.User != "some input" {
		t.Errorf("expected raw input as user prompt, got %q", pair.User)
	}
}

func TestAssembleMeetingRoomPrependsContext(t *testing.T) {
	without := Assemble(agentModels.RoleDeveloper, agentModels.ModeMeetingRoom, "discussion text", "")
	with := Assemble(agentModels.RoleDeveloper, agentModels.ModeMeetingRoom, "discussion text", "analyst: we need OAuth")

	if !strings.HasPrefix(with.User, "analyst: we need OAuth\n\n") {
		t.Errorf("context not prepended with blank-line separator:\n%q", with.User[:min(len(with.User), 80)])
	}
	if !strings.HasSuffix(with.User, without.User) {
		t.Error("context changed the formatted prompt beyond prepending")
	}
	if with.System != without.System {
		t.Error("context must not affect the system prompt")
	}
}

func TestAssembleSingleChatEmbedsInput(t *testing.T) {
	pair := Assemble(agentModels.RoleAnalyst, agentModels.ModeSingleChat, "inventory sync", "")
	if !strings.Contains(pair.User, "inventory sync") {
		t.Error("input text missing from user prompt")
	}
}

func TestArchitectPromptCarriesMarkers(t *testing.T) {
	pair := Assemble(agentModels.RoleArchitect, agentModels.ModeSingleChat, "a requirement", "")
	if !strings.Contains(pair.User, ArchitectureMarker) || !strings.Contains(pair.User, DatabaseMarker) {
		t.Error("architect prompt must instruct the model to emit both section markers")
	}
}

func TestParseModeDefaultsToSingleChat(t *testing.T) {
	if got := agentModels.ParseMode("standup"); got != agentModels.ModeSingleChat {
		t.Errorf("expected single_chat fallback, got %s", got)
	}
	if got := agentModels.ParseMode("meeting_room"); got != agentModels.ModeMeetingRoom {
		t.Errorf("expected meeting_room, got %s", got)
	}
}

func TestSplitArchitecture(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		wantArch string
		wantDB   string
	}{
		{
			name:     "both sections present",
			reply:    ArchitectureMarker + "\nlayered services\n" + DatabaseMarker + "\nCREATE TABLE users (...);",
			wantArch: "layered services",
			wantDB:   "CREATE TABLE users (...);",
		},
		{
			name:     "marker absent",
			reply:    "just one blob of text",
			wantArch: "just one blob of text",
			wantDB:   "",
		},
		{
			name:     "database section without architecture label",
			reply:    "overview first\n" + DatabaseMarker + "\nCREATE TABLE t (id int);",
			wantArch: "overview first",
			wantDB:   "CREATE TABLE t (id int);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arch, db := SplitArchitecture(tt.reply)
			if arch != tt.wantArch {
				t.Errorf("architecture: expected %q, got %q", tt.wantArch, arch)
			}
			if db != tt.wantDB {
				t.Errorf("database design: expected %q, got %q", tt.wantDB, db)
			}
		})
	}
}
