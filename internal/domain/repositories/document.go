package repositories

import (
	"context"

	"devforge/internal/domain/models"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create inserts a new document and fills in the generated ID and timestamps
	Create(ctx context.Context, document *models.Document) error

	// List retrieves all documents, newest first
	List(ctx context.Context) ([]models.Document, error)

	// ListByTask retrieves the documents attached to one task, newest first
	ListByTask(ctx context.Context, taskID string) ([]models.Document, error)
}
