package collab

import (
	"context"

	"devforge/internal/domain/models"
)

// CreateDocumentRequest is the payload for storing a document
type CreateDocumentRequest struct {
	Title   string  `json:"title"`
	DocType string  `json:"doc_type"`
	Content string  `json:"content"`
	TaskID  *string `json:"task_id"`
}

// DocumentService defines document operations
type DocumentService interface {
	// CreateDocument stores a document, optionally attached to a task
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*models.Document, error)

	// ListDocuments retrieves all documents, newest first
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// ListTaskDocuments retrieves the documents attached to one task
	ListTaskDocuments(ctx context.Context, taskID string) ([]models.Document, error)
}
