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

// documentService implements the DocumentService interface
type documentService struct {
	documentRepo repositories.DocumentRepository
	taskRepo     repositories.TaskRepository
	logger       *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	taskRepo repositories.TaskRepository,
	logger *slog.Logger,
) collabSvc.DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		taskRepo:     taskRepo,
		logger:       logger,
	}
}

// CreateDocument stores a document, optionally attached to a task
func (s *documentService) CreateDocument(ctx context.Context, req *collabSvc.CreateDocumentRequest) (*models.Document, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	document := &models.Document{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(req.Title),
		DocType:   models.DocType(req.DocType),
		Content:   req.Content,
		TaskID:    req.TaskID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		"id", document.ID,
		"title", document.Title,
		"doc_type", document.DocType,
	)

	return document, nil
}

// ListDocuments retrieves all documents
func (s *documentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return s.documentRepo.List(ctx)
}

// ListTaskDocuments retrieves the documents attached to one task. The task
// is looked up first so a missing task reads as 404 rather than an empty
// list.
func (s *documentService) ListTaskDocuments(ctx context.Context, taskID string) ([]models.Document, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	return s.documentRepo.ListByTask(ctx, taskID)
}

// validateCreateRequest validates a create document request
func (s *documentService) validateCreateRequest(req *collabSvc.CreateDocumentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxDocumentTitleLength),
		),
		validation.Field(&req.DocType,
			validation.Required,
			validation.In("code", "requirement", "test", "architecture"),
		),
		validation.Field(&req.Content, validation.Required),
	)
}
