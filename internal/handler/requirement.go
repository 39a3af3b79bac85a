package handler

import (
	"log/slog"
	"net/http"

	collabSvc "devforge/internal/domain/services/collab"
	"devforge/internal/httputil"
)

// RequirementHandler handles requirement HTTP requests
type RequirementHandler struct {
	requirementService collabSvc.RequirementService
	logger             *slog.Logger
}

// NewRequirementHandler creates a new requirement handler
func NewRequirementHandler(requirementService collabSvc.RequirementService, logger *slog.Logger) *RequirementHandler {
	return &RequirementHandler{
		requirementService: requirementService,
		logger:             logger,
	}
}

// CreateRequirement creates a requirement
// POST /api/requirements
func (h *RequirementHandler) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req collabSvc.CreateRequirementRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.CreatorID = userID

	requirement, err := h.requirementService.CreateRequirement(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, requirement)
}

// ListRequirements retrieves all requirements
// GET /api/requirements
func (h *RequirementHandler) ListRequirements(w http.ResponseWriter, r *http.Request) {
	requirements, err := h.requirementService.ListRequirements(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, requirements)
}

// GetRequirement retrieves a requirement by ID
// GET /api/requirements/{id}
func (h *RequirementHandler) GetRequirement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "requirement ID is required")
		return
	}

	requirement, err := h.requirementService.GetRequirement(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, requirement)
}

// UpdateRequirement applies a partial update
// PATCH /api/requirements/{id}
func (h *RequirementHandler) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "requirement ID is required")
		return
	}

	var req collabSvc.UpdateRequirementRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	requirement, err := h.requirementService.UpdateRequirement(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, requirement)
}
