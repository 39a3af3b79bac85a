package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	agentModels "devforge/internal/domain/models/agent"
	agentSvc "devforge/internal/domain/services/agent"
)

// DefaultConversationID is the transcript bucket used when a caller omits a
// conversation id. Every anonymous caller shares this one bucket, so their
// histories interleave; callers that need isolation must supply their own id.
const DefaultConversationID = "default"

// Service orchestrates one generation: read history, assemble the prompt,
// call the completion provider, and append the new turns to the transcript.
// One Service handles all task families; each family is a thin wrapper over
// the same pipeline with a fixed role and mode.
type Service struct {
	store  agentSvc.ConversationStore
	client agentSvc.CompletionClient
	logger *slog.Logger

	warnSharedBucket sync.Once
}

// NewService creates a generation orchestrator.
func NewService(store agentSvc.ConversationStore, client agentSvc.CompletionClient, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Store exposes the conversation store for transcript management endpoints.
func (s *Service) Store() agentSvc.ConversationStore {
	return s.store
}

// GenerateRequirement produces a requirement specification for a module topic.
func (s *Service) GenerateRequirement(ctx context.Context, topic, conversationID string) (string, error) {
	return s.generate(ctx, agentModels.RoleAnalyst, agentModels.ModeSingleChat, topic, "", conversationID)
}

// GenerateArchitecture produces an architecture proposal and database DDL for
// a requirement. The reply is split on the database section marker; replies
// without the marker come back whole in the first field.
func (s *Service) GenerateArchitecture(ctx context.Context, requirementText, conversationID string) (architecture, databaseDesign string, err error) {
	reply, err := s.generate(ctx, agentModels.RoleArchitect, agentModels.ModeSingleChat, requirementText, "", conversationID)
	if err != nil {
		return "", "", err
	}

	architecture, databaseDesign = SplitArchitecture(reply)
	return architecture, databaseDesign, nil
}

// GenerateCode produces module implementation code from a description.
func (s *Service) GenerateCode(ctx context.Context, description, conversationID string) (string, error) {
	return s.generate(ctx, agentModels.RoleDeveloper, agentModels.ModeSingleChat, description, "", conversationID)
}

// GenerateTests produces unit tests for a code snippet.
func (s *Service) GenerateTests(ctx context.Context, code, conversationID string) (string, error) {
	return s.generate(ctx, agentModels.RoleTester, agentModels.ModeSingleChat, code, "", conversationID)
}

// Respond produces a free-form reply for any role and mode. Used by the
// meeting-room agent endpoint.
func (s *Service) Respond(ctx context.Context, role agentModels.Role, mode agentModels.Mode, input, meetingContext, conversationID string) (string, error) {
	return s.generate(ctx, role, mode, input, meetingContext, conversationID)
}

// StreamRequirement is the streaming twin of GenerateRequirement.
func (s *Service) StreamRequirement(ctx context.Context, topic, conversationID string) (*Stream, error) {
	return s.stream(ctx, agentModels.RoleAnalyst, agentModels.ModeSingleChat, topic, "", conversationID)
}

// StreamArchitecture is the streaming twin of GenerateArchitecture. The raw
// reply streams unsplit; clients wanting the two sections use the
// non-streaming endpoint.
func (s *Service) StreamArchitecture(ctx context.Context, requirementText, conversationID string) (*Stream, error) {
	return s.stream(ctx, agentModels.RoleArchitect, agentModels.ModeSingleChat, requirementText, "", conversationID)
}

// StreamCode is the streaming twin of GenerateCode.
func (s *Service) StreamCode(ctx context.Context, description, conversationID string) (*Stream, error) {
	return s.stream(ctx, agentModels.RoleDeveloper, agentModels.ModeSingleChat, description, "", conversationID)
}

// StreamTests is the streaming twin of GenerateTests.
func (s *Service) StreamTests(ctx context.Context, code, conversationID string) (*Stream, error) {
	return s.stream(ctx, agentModels.RoleTester, agentModels.ModeSingleChat, code, "", conversationID)
}

// StreamResponse is the streaming twin of Respond.
func (s *Service) StreamResponse(ctx context.Context, role agentModels.Role, mode agentModels.Mode, input, meetingContext, conversationID string) (*Stream, error) {
	return s.stream(ctx, role, mode, input, meetingContext, conversationID)
}

// generate runs the non-streaming pipeline. History is appended only after
// the full reply is known: a call never sees its own output in its own
// history, and a failed call leaves the transcript untouched.
func (s *Service) generate(ctx context.Context, role agentModels.Role, mode agentModels.Mode, input, meetingContext, conversationID string) (string, error) {
	id := s.resolveConversation(conversationID)
	history := s.store.Read(id)
	prompt := Assemble(role, mode, input, meetingContext)

	reply, err := s.client.Complete(ctx, prompt, history)
	if err != nil {
		return "", fmt.Errorf("generate %s reply: %w", role, err)
	}

	s.store.Append(id, agentModels.SpeakerUser, prompt.User)
	s.store.Append(id, agentModels.SpeakerAssistant, reply)

	s.logger.Debug("generation complete",
		"role", role,
		"mode", mode,
		"conversation_id", id,
		"history_turns", len(history),
		"reply_chars", len(reply),
	)

	return reply, nil
}

func (s *Service) resolveConversation(id string) string {
	if id != "" {
		return id
	}

	// Anonymous callers all land in one shared bucket. Warn once per
	// process so operators notice cross-caller history mixing.
	s.warnSharedBucket.Do(func() {
		s.logger.Warn("caller omitted conversation id; anonymous calls share one history bucket",
			"conversation_id", DefaultConversationID,
		)
	})
	return DefaultConversationID
}
