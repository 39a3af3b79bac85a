package collab

import (
	"context"

	"devforge/internal/domain/models"
)

// CreateRequirementRequest is the payload for creating a requirement.
// CreatorID comes from the authenticated caller, not the body.
type CreateRequirementRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Priority  string `json:"priority"`
	CreatorID string `json:"-"`
}

// UpdateRequirementRequest is a partial update; nil fields stay unchanged
type UpdateRequirementRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
}

// RequirementService defines requirement operations
type RequirementService interface {
	// CreateRequirement creates a draft requirement at version 1
	CreateRequirement(ctx context.Context, req *CreateRequirementRequest) (*models.Requirement, error)

	// ListRequirements retrieves all requirements, newest first
	ListRequirements(ctx context.Context) ([]models.Requirement, error)

	// GetRequirement retrieves a requirement by ID
	GetRequirement(ctx context.Context, id string) (*models.Requirement, error)

	// UpdateRequirement applies a partial update; a content change bumps the version
	UpdateRequirement(ctx context.Context, id string, req *UpdateRequirementRequest) (*models.Requirement, error)
}
