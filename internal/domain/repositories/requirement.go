package repositories

import (
	"context"

	"devforge/internal/domain/models"
)

// RequirementRepository defines data access operations for requirements
type RequirementRepository interface {
	// Create inserts a new requirement and fills in the generated ID and timestamps
	Create(ctx context.Context, requirement *models.Requirement) error

	// List retrieves all requirements, newest first
	List(ctx context.Context) ([]models.Requirement, error)

	// GetByID retrieves a requirement by ID
	GetByID(ctx context.Context, id string) (*models.Requirement, error)

	// Update persists the requirement's mutable fields and bumped version
	Update(ctx context.Context, requirement *models.Requirement) error
}
