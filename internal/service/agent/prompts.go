package agent

import (
	"fmt"
	"strings"

	agentModels "devforge/internal/domain/models/agent"
)

// Section markers the architect prompts ask the model to emit. The
// orchestrator splits architect replies on the database marker.
const (
	ArchitectureMarker = "[Architecture Design]"
	DatabaseMarker     = "[Database Design]"
)

// fallbackSystemPrompt backs the unknown-role arm of every mode. Unknown
// roles degrade to a generic assistant instead of failing.
const fallbackSystemPrompt = "You are a helpful AI assistant."

// Assemble derives the (system, user) prompt pair for one generation request.
// It is a pure function: same inputs always produce the same pair, and it
// never fails - unknown roles fall back to a generic assistant prompt.
//
// In meeting-room mode a non-empty context (other participants' statements)
// is prepended verbatim to the user prompt, separated by a blank line.
func Assemble(role agentModels.Role, mode agentModels.Mode, input, context string) agentModels.PromptPair {
	switch mode {
	case agentModels.ModeMeetingRoom:
		user := meetingRoomUserPrompt(role, input)
		if context != "" {
			user = context + "\n\n" + user
		}
		return agentModels.PromptPair{
			System: meetingSystemPrompt(role),
			User:   user,
		}

	case agentModels.ModeMeetingSummary:
		return agentModels.PromptPair{
			System: summarySystemPrompt(role),
			User:   summaryUserPrompt(input, context),
		}

	default: // single-turn task
		return agentModels.PromptPair{
			System: baseSystemPrompt(role),
			User:   singleChatUserPrompt(role, input),
		}
	}
}

func baseSystemPrompt(role agentModels.Role) string {
	switch role {
	case agentModels.RoleAnalyst:
		return "You are a professional systems analyst. Your job is to understand user needs and deliver detailed functional requirement analyses. Users may ask for revisions; adjust your analysis based on their feedback instead of starting over."
	case agentModels.RoleArchitect:
		return "You are a senior systems architect. Your job is to design system architectures and database structures. Users may ask for revisions; adjust your design based on their feedback instead of starting over."
	case agentModels.RoleDeveloper:
		return "You are a senior backend developer. Your job is to write implementation code. Users may ask for revisions; adjust your implementation based on their feedback instead of starting over."
	case agentModels.RoleTester:
		return "You are a senior test engineer. Your job is to design test strategies and test cases. Users may ask for revisions; adjust your test plan based on their feedback instead of starting over."
	default:
		return fallbackSystemPrompt
	}
}

func singleChatUserPrompt(role agentModels.Role, input string) string {
	switch role {
	case agentModels.RoleAnalyst:
		return fmt.Sprintf(`You are a senior systems analyst. Given the module topic below, produce a detailed functional requirement specification. Keep the output concise and systematic so developers can implement it quickly.

Use this structure:
Module topic: %s
1. Module name
2. Functional overview
3. Interface design (HTTP method, path, request parameters, response shape)
4. Use cases (id, name, actors, preconditions, main flow, extensions, postconditions)
5. UML modeling suggestions (use case diagram, class diagram, optional sequence/activity diagrams)
6. Other considerations (authentication, error handling, idempotency)

Note: if the user is giving feedback on an earlier analysis, respond to that feedback directly instead of regenerating the full document.`, input)

	case agentModels.RoleArchitect:
		return fmt.Sprintf(`You are a systems architect. Given the software requirement below, produce an architecture proposal and database design DDL.
Requirement:
%s

Output strictly in this format:
%s
...
%s
...`, input, ArchitectureMarker, DatabaseMarker)

	case agentModels.RoleDeveloper:
		return fmt.Sprintf(`You are a senior backend developer. Given the module description below, generate the module implementation, including routing and service logic.
Module description:
%s

Return complete source code.`, input)

	case agentModels.RoleTester:
		return fmt.Sprintf(`Generate unit tests for the module code below:
`+"```"+`
%s
`+"```"+`
Cover interface calls, boundary values, and error-case assertions.`, input)

	default:
		return input
	}
}

func meetingSystemPrompt(role agentModels.Role) string {
	switch role {
	case agentModels.RoleAnalyst:
		return "You are a professional systems analyst in a team meeting with an architect, a developer, and a test engineer. Understand the user's needs, collaborate with the other roles, and adjust your analysis based on feedback."
	case agentModels.RoleArchitect:
		return "You are a senior systems architect in a team meeting with an analyst, a developer, and a test engineer. Design the architecture from the requirement analysis, collaborate with the other roles, and adjust your design based on feedback."
	case agentModels.RoleDeveloper:
		return "You are a senior backend developer in a team meeting with an analyst, an architect, and a test engineer. Implement code from the requirements and architecture, collaborate with the other roles, and adjust your implementation based on feedback."
	case agentModels.RoleTester:
		return "You are a senior test engineer in a team meeting with an analyst, an architect, and a developer. Design the test plan, collaborate with the other roles, and adjust it based on feedback."
	default:
		return fallbackSystemPrompt + " You are participating in a team meeting."
	}
}

func meetingRoomUserPrompt(role agentModels.Role, input string) string {
	switch role {
	case agentModels.RoleAnalyst:
		return fmt.Sprintf(`You are the requirements analyst in a project meeting with the user, an architect, a developer, and a test engineer.
Respond in the context of the whole conversation; do not treat every message as a brand new requirement.

Your responsibilities:
1. Understand user needs and provide detailed functional requirement analysis
2. Answer questions and suggestions about the requirements from the user and the other roles
3. Keep the requirements complete, consistent, and feasible
4. Refine the requirements as the discussion evolves

Current discussion:
%s

If you are speaking first, or the user raised a new requirement, structure your answer as:
1. Module name
2. Functional overview
3. Detailed requirement points
4. Use case descriptions
5. Interface suggestions

If you are responding to someone else's question or suggestion, answer it directly without repeating the full analysis. If the discussion has gone several rounds, build on what was already agreed rather than restarting.`, input)

	case agentModels.RoleArchitect:
		return fmt.Sprintf(`You are the systems architect in a project meeting with the user, an analyst, a developer, and a test engineer.
Respond in the context of the whole conversation; do not treat every message as a brand new design task.

Your responsibilities:
1. Design the system architecture and database structure from the analyst's requirements
2. Answer questions and suggestions about the architecture
3. Keep the design sound, scalable, and performant

Current discussion:
%s

If the analyst has already provided a requirement analysis, structure your answer as:
%s
1. Architecture overview
2. Core components
3. Technology choices
4. Deployment layout

%s
1. ER overview
2. Main tables
3. Index design

If you are responding to someone else's question or suggestion, answer it directly without repeating the full design.`, input, ArchitectureMarker, DatabaseMarker)

	case agentModels.RoleDeveloper:
		return fmt.Sprintf(`You are the developer in a project meeting with the user, an analyst, an architect, and a test engineer.
Respond in the context of the whole conversation; do not treat every message as a brand new code-generation task.

Your responsibilities:
1. Implement the requirements and architecture in code
2. Answer questions and suggestions about the implementation
3. Keep the code maintainable and performant

Current discussion:
%s

If the architect has already provided a design, implement the key modules, focusing on:
1. Core data structures
2. Main API endpoints
3. Key business logic
4. Error handling

If you are responding to someone else's question or suggestion, answer it directly without providing a full implementation.`, input)

	case agentModels.RoleTester:
		return fmt.Sprintf(`You are the test engineer in a project meeting with the user, an analyst, an architect, and a developer.
Respond in the context of the whole conversation; do not treat every message as a brand new testing task.

Your responsibilities:
1. Design the test strategy and test cases from the requirements and implementation
2. Answer questions and suggestions about testing
3. Keep the tests thorough, effective, and automatable

Current discussion:
%s

If the developer has already provided an implementation, propose a test plan covering:
1. Test strategy overview
2. Unit test cases
3. Integration test plan
4. Performance considerations
5. Boundary and error cases

If you are responding to someone else's question or suggestion, answer it directly without providing a full test plan.`, input)

	default:
		return input
	}
}

func summarySystemPrompt(role agentModels.Role) string {
	switch role {
	case agentModels.RoleAnalyst:
		return "You are a professional systems analyst responsible for summarizing a team meeting. Distill the plan the team agreed on; do not copy the conversation."
	case agentModels.RoleArchitect:
		return "You are a senior systems architect responsible for summarizing the architecture outcomes of a team meeting. Distill the design the team agreed on; do not copy the conversation."
	case agentModels.RoleDeveloper:
		return "You are a senior backend developer responsible for summarizing the development plan from a team meeting. Distill the plan the team agreed on; do not copy the conversation."
	case agentModels.RoleTester:
		return "You are a senior test engineer responsible for summarizing the test plan from a team meeting. Distill the plan the team agreed on; do not copy the conversation."
	default:
		return fallbackSystemPrompt + " You are responsible for summarizing the outcomes of a team meeting."
	}
}

func summaryUserPrompt(input, context string) string {
	extra := ""
	if context != "" {
		extra = context
	}
	return fmt.Sprintf(`Produce a complete meeting summary from the transcript below, covering the agreed requirements, architecture, development plan, and test plan.
Do not copy the conversation; distill the final agreed plan, organized as:

1. Project overview
2. Requirement analysis outcome
3. Architecture design
4. Development plan
5. Test strategy
6. Next actions

Meeting transcript:
%s

Additional context, if any:
%s`, input, extra)
}

// SplitArchitecture separates an architect reply into its architecture and
// database sections. Replies without the database marker come back whole in
// the first field with an empty second field.
func SplitArchitecture(reply string) (architecture, databaseDesign string) {
	before, after, found := strings.Cut(reply, DatabaseMarker)
	architecture = strings.TrimSpace(strings.Replace(before, ArchitectureMarker, "", 1))
	if !found {
		return architecture, ""
	}
	return architecture, strings.TrimSpace(after)
}
