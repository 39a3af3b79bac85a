package handler

import (
	"log/slog"
	"net/http"

	agentModels "devforge/internal/domain/models/agent"
	"devforge/internal/httputil"
	agentService "devforge/internal/service/agent"
)

// AgentHandler handles free-form role/mode generation, including
// meeting-room turns where prior discussion rides in as context.
type AgentHandler struct {
	generate *GenerateHandler
	agent    *agentService.Service
	logger   *slog.Logger
}

// NewAgentHandler creates a new agent handler. It shares the generation
// handler's SSE pump so both surfaces frame streams identically.
func NewAgentHandler(agent *agentService.Service, generate *GenerateHandler, logger *slog.Logger) *AgentHandler {
	return &AgentHandler{
		generate: generate,
		agent:    agent,
		logger:   logger,
	}
}

// Respond produces a reply for any role and mode
// POST /api/agent
func (h *AgentHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role           string `json:"role"`
		Mode           string `json:"mode"`
		Input          string `json:"input"`
		Context        string `json:"context"`
		ConversationID string `json:"conversation_id"`
		Stream         bool   `json:"stream"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validInput(req.Input); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "input: "+err.Error())
		return
	}

	// Unknown values degrade to the fallback arms rather than erroring.
	role := agentModels.ParseRole(req.Role)
	mode := agentModels.ParseMode(req.Mode)

	if req.Stream {
		st, err := h.agent.StreamResponse(r.Context(), role, mode, req.Input, req.Context, req.ConversationID)
		if err != nil {
			handleError(w, err)
			return
		}
		h.generate.streamToClient(w, r, st)
		return
	}

	reply, err := h.agent.Respond(r.Context(), role, mode, req.Input, req.Context, req.ConversationID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
