package handler

import (
	"log/slog"
	"net/http"

	agentSvc "devforge/internal/domain/services/agent"
	"devforge/internal/httputil"
)

// ConversationHandler handles transcript management requests
type ConversationHandler struct {
	store  agentSvc.ConversationStore
	logger *slog.Logger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(store agentSvc.ConversationStore, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{
		store:  store,
		logger: logger,
	}
}

// ClearConversation drops a transcript. Clearing an id that never existed
// succeeds; the caller only cares that the transcript is gone.
// DELETE /api/conversations/{id}
func (h *ConversationHandler) ClearConversation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "conversation ID is required")
		return
	}

	h.store.Clear(id)
	h.logger.Info("conversation cleared", "conversation_id", id)

	w.WriteHeader(http.StatusNoContent)
}
