package repositories

import (
	"context"

	"devforge/internal/domain/models"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and timestamp
	Create(ctx context.Context, user *models.User) error

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)
}
