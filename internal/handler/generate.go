package handler

import (
	"log/slog"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"devforge/internal/config"
	"devforge/internal/handler/sse"
	"devforge/internal/httputil"
	agentService "devforge/internal/service/agent"
)

// GenerateHandler handles the four artifact generation families. Each
// endpoint takes its input text, an optional conversation id, and a stream
// flag; streaming responses go out as SSE frames.
type GenerateHandler struct {
	agent  *agentService.Service
	pace   time.Duration
	logger *slog.Logger
}

// NewGenerateHandler creates a new generation handler. pace is the fixed
// delay between streamed content frames; zero disables pacing.
func NewGenerateHandler(agent *agentService.Service, pace time.Duration, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		agent:  agent,
		pace:   pace,
		logger: logger,
	}
}

func validInput(text string) error {
	return validation.Validate(text,
		validation.Required,
		validation.Length(1, config.MaxGenerationInputLength),
	)
}

// GenerateRequirement produces a requirement document for a topic
// POST /api/generate/requirement
func (h *GenerateHandler) GenerateRequirement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic          string `json:"topic"`
		ConversationID string `json:"conversation_id"`
		Stream         bool   `json:"stream"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validInput(req.Topic); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "topic: "+err.Error())
		return
	}

	if req.Stream {
		st, err := h.agent.StreamRequirement(r.Context(), req.Topic, req.ConversationID)
		if err != nil {
			handleError(w, err)
			return
		}
		h.streamToClient(w, r, st)
		return
	}

	reply, err := h.agent.GenerateRequirement(r.Context(), req.Topic, req.ConversationID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// GenerateArchitecture produces an architecture brief and database design
// POST /api/generate/architecture
func (h *GenerateHandler) GenerateArchitecture(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Requirement    string `json:"requirement"`
		ConversationID string `json:"conversation_id"`
		Stream         bool   `json:"stream"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validInput(req.Requirement); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "requirement: "+err.Error())
		return
	}

	if req.Stream {
		// The raw reply streams unsplit; section splitting is only
		// offered on the non-streaming path.
		st, err := h.agent.StreamArchitecture(r.Context(), req.Requirement, req.ConversationID)
		if err != nil {
			handleError(w, err)
			return
		}
		h.streamToClient(w, r, st)
		return
	}

	architecture, databaseDesign, err := h.agent.GenerateArchitecture(r.Context(), req.Requirement, req.ConversationID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"architecture":    architecture,
		"database_design": databaseDesign,
	})
}

// GenerateCode produces module code from a description
// POST /api/generate/code
func (h *GenerateHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description    string `json:"description"`
		ConversationID string `json:"conversation_id"`
		Stream         bool   `json:"stream"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validInput(req.Description); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "description: "+err.Error())
		return
	}

	if req.Stream {
		st, err := h.agent.StreamCode(r.Context(), req.Description, req.ConversationID)
		if err != nil {
			handleError(w, err)
			return
		}
		h.streamToClient(w, r, st)
		return
	}

	reply, err := h.agent.GenerateCode(r.Context(), req.Description, req.ConversationID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// GenerateTests produces unit tests for a code snippet
// POST /api/generate/tests
func (h *GenerateHandler) GenerateTests(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code           string `json:"code"`
		ConversationID string `json:"conversation_id"`
		Stream         bool   `json:"stream"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validInput(req.Code); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "code: "+err.Error())
		return
	}

	if req.Stream {
		st, err := h.agent.StreamTests(r.Context(), req.Code, req.ConversationID)
		if err != nil {
			handleError(w, err)
			return
		}
		h.streamToClient(w, r, st)
		return
	}

	reply, err := h.agent.GenerateTests(r.Context(), req.Code, req.ConversationID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// keepAliveInterval bounds how long an idle SSE connection goes without any
// bytes; slow first tokens otherwise get dropped by intermediaries.
const keepAliveInterval = 15 * time.Second

// streamToClient pumps an orchestrator stream to the client as SSE frames.
// History commits only after a clean upstream end: an error chunk or a
// client disconnect leaves the transcript untouched.
func (h *GenerateHandler) streamToClient(w http.ResponseWriter, r *http.Request, st *agentService.Stream) {
	writer, err := sse.NewWriter(w)
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	keepalive := time.NewTicker(keepAliveInterval)
	defer keepalive.Stop()

	failed := false
	first := true
	for {
		select {
		case chunk, ok := <-st.Chunks:
			if !ok {
				if !failed {
					st.Finalize()
					_ = writer.WriteDone()
				}
				return
			}

			if chunk.Err != nil {
				// Terminal by contract; the next receive observes
				// the close. No done frame follows an error frame.
				failed = true
				_ = writer.WriteError(chunk.Err.Error())
				continue
			}

			if !first && h.pace > 0 {
				select {
				case <-time.After(h.pace):
				case <-r.Context().Done():
					return
				}
			}
			first = false

			if err := writer.WriteContent(chunk.Content); err != nil {
				h.logger.Debug("stream write failed, dropping client", "error", err)
				return
			}

		case <-keepalive.C:
			if err := writer.WriteKeepAlive(); err != nil {
				return
			}

		case <-r.Context().Done():
			return
		}
	}
}
