package handler

import (
	"log/slog"
	"net/http"

	"devforge/internal/capabilities"
	"devforge/internal/config"
	"devforge/internal/httputil"
)

// ModelsHandler serves the model capability catalogue
type ModelsHandler struct {
	cfg      *config.Config
	registry *capabilities.Registry
	logger   *slog.Logger
}

// NewModelsHandler creates a new models handler
func NewModelsHandler(cfg *config.Config, registry *capabilities.Registry, logger *slog.Logger) *ModelsHandler {
	return &ModelsHandler{
		cfg:      cfg,
		registry: registry,
		logger:   logger,
	}
}

// GetCapabilities returns every provider's models and the active default
// GET /api/models/capabilities
func (h *ModelsHandler) GetCapabilities(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"default_provider": h.cfg.DefaultProvider,
		"providers":        h.registry.Snapshot(),
	})
}
