package collab

import (
	"context"

	"devforge/internal/domain/models"
)

// CreateTaskRequest is the payload for creating a task
type CreateTaskRequest struct {
	Name          string  `json:"name"`
	AssigneeID    *string `json:"assignee_id"`
	RequirementID *string `json:"requirement_id"`
}

// TaskService defines task operations
type TaskService interface {
	// CreateTask creates a task in the requirement phase
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*models.Task, error)

	// ListTasks retrieves all tasks, newest first
	ListTasks(ctx context.Context) ([]models.Task, error)
}
