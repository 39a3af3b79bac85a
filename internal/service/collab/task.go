package collab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"devforge/internal/config"
	"devforge/internal/domain"
	"devforge/internal/domain/models"
	"devforge/internal/domain/repositories"
	collabSvc "devforge/internal/domain/services/collab"
)

// taskService implements the TaskService interface
type taskService struct {
	taskRepo repositories.TaskRepository
	logger   *slog.Logger
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repositories.TaskRepository,
	logger *slog.Logger,
) collabSvc.TaskService {
	return &taskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask creates a task in the requirement phase
func (s *taskService) CreateTask(ctx context.Context, req *collabSvc.CreateTaskRequest) (*models.Task, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	task := &models.Task{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(req.Name),
		Status:        models.TaskStatusRequirement,
		AssigneeID:    req.AssigneeID,
		RequirementID: req.RequirementID,
		CreatedAt:     time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		"id", task.ID,
		"name", task.Name,
	)

	return task, nil
}

// ListTasks retrieves all tasks
func (s *taskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.List(ctx)
}

// validateCreateRequest validates a create task request
func (s *taskService) validateCreateRequest(req *collabSvc.CreateTaskRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxTaskNameLength),
		),
	)
}
