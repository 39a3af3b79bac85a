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

// requirementService implements the RequirementService interface
type requirementService struct {
	requirementRepo repositories.RequirementRepository
	logger          *slog.Logger
}

// NewRequirementService creates a new requirement service
func NewRequirementService(
	requirementRepo repositories.RequirementRepository,
	logger *slog.Logger,
) collabSvc.RequirementService {
	return &requirementService{
		requirementRepo: requirementRepo,
		logger:          logger,
	}
}

// CreateRequirement creates a draft requirement at version 1
func (s *requirementService) CreateRequirement(ctx context.Context, req *collabSvc.CreateRequirementRequest) (*models.Requirement, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	priority := models.RequirementPriority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	requirement := &models.Requirement{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Priority:  priority,
		Status:    models.StatusDraft,
		Version:   1,
		CreatorID: req.CreatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.requirementRepo.Create(ctx, requirement); err != nil {
		return nil, err
	}

	s.logger.Info("requirement created",
		"id", requirement.ID,
		"title", requirement.Title,
		"priority", requirement.Priority,
		"creator_id", requirement.CreatorID,
	)

	return requirement, nil
}

// ListRequirements retrieves all requirements
func (s *requirementService) ListRequirements(ctx context.Context) ([]models.Requirement, error) {
	return s.requirementRepo.List(ctx)
}

// GetRequirement retrieves a requirement by ID
func (s *requirementService) GetRequirement(ctx context.Context, id string) (*models.Requirement, error) {
	return s.requirementRepo.GetByID(ctx, id)
}

// UpdateRequirement applies a partial update. A frozen requirement rejects
// content changes; a content change bumps the version.
func (s *requirementService) UpdateRequirement(ctx context.Context, id string, req *collabSvc.UpdateRequirementRequest) (*models.Requirement, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	requirement, err := s.requirementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contentChanged := false
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != requirement.Title {
			requirement.Title = title
			contentChanged = true
		}
	}
	if req.Content != nil && *req.Content != requirement.Content {
		requirement.Content = *req.Content
		contentChanged = true
	}

	if contentChanged && requirement.Status == models.StatusFrozen {
		return nil, fmt.Errorf("%w: requirement %s is frozen", domain.ErrValidation, id)
	}

	if req.Priority != nil {
		requirement.Priority = models.RequirementPriority(*req.Priority)
	}
	if req.Status != nil {
		requirement.Status = models.RequirementStatus(*req.Status)
	}
	if contentChanged {
		requirement.Version++
	}
	requirement.UpdatedAt = time.Now()

	if err := s.requirementRepo.Update(ctx, requirement); err != nil {
		return nil, err
	}

	s.logger.Info("requirement updated",
		"id", requirement.ID,
		"version", requirement.Version,
		"status", requirement.Status,
	)

	return requirement, nil
}

// validateCreateRequest validates a create requirement request
func (s *requirementService) validateCreateRequest(req *collabSvc.CreateRequirementRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxRequirementTitleLength),
		),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.Priority,
			validation.In("high", "medium", "low", ""),
		),
		validation.Field(&req.CreatorID, validation.Required),
	)
}

// validateUpdateRequest validates an update requirement request
func (s *requirementService) validateUpdateRequest(req *collabSvc.UpdateRequirementRequest) error {
	if req.Title == nil && req.Content == nil && req.Priority == nil && req.Status == nil {
		return fmt.Errorf("no fields to update")
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if req.Title != nil && len(*req.Title) > config.MaxRequirementTitleLength {
		return fmt.Errorf("title exceeds %d characters", config.MaxRequirementTitleLength)
	}
	if req.Priority != nil && !models.RequirementPriority(*req.Priority).Valid() {
		return fmt.Errorf("priority must be high, medium, or low")
	}
	if req.Status != nil && !models.RequirementStatus(*req.Status).Valid() {
		return fmt.Errorf("status must be draft, confirmed, or frozen")
	}

	return nil
}
