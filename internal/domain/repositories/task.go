package repositories

import (
	"context"

	"devforge/internal/domain/models"
)

// TaskRepository defines data access operations for tasks
type TaskRepository interface {
	// Create inserts a new task and fills in the generated ID and timestamp
	Create(ctx context.Context, task *models.Task) error

	// List retrieves all tasks, newest first
	List(ctx context.Context) ([]models.Task, error)

	// GetByID retrieves a task by ID
	GetByID(ctx context.Context, id string) (*models.Task, error)
}
