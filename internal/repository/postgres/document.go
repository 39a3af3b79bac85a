package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"devforge/internal/domain"
	"devforge/internal/domain/models"
	"devforge/internal/domain/repositories"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new document
func (r *PostgresDocumentRepository) Create(ctx context.Context, document *models.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, doc_type, content, task_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, r.tables.Documents)

	err := r.pool.QueryRow(ctx, query,
		document.ID,
		document.Title,
		document.DocType,
		document.Content,
		document.TaskID,
		document.CreatedAt,
		document.UpdatedAt,
	).Scan(&document.ID, &document.CreatedAt, &document.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("document references a missing task: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create document: %w", err)
	}

	return nil
}

// List retrieves all documents, newest first
func (r *PostgresDocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, title, doc_type, content, task_id, created_at, updated_at
		FROM %s
		ORDER BY created_at DESC
	`, r.tables.Documents)

	return r.queryDocuments(ctx, query)
}

// ListByTask retrieves the documents attached to one task, newest first
func (r *PostgresDocumentRepository) ListByTask(ctx context.Context, taskID string) ([]models.Document, error) {
	query := fmt.Sprintf(`
		SELECT id, title, doc_type, content, task_id, created_at, updated_at
		FROM %s
		WHERE task_id = $1
		ORDER BY created_at DESC
	`, r.tables.Documents)

	return r.queryDocuments(ctx, query, taskID)
}

func (r *PostgresDocumentRepository) queryDocuments(ctx context.Context, query string, args ...any) ([]models.Document, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	documents := []models.Document{}
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.Title,
			&doc.DocType,
			&doc.Content,
			&doc.TaskID,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return documents, nil
}
