package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"devforge/internal/domain"
	"devforge/internal/domain/models"
	"devforge/internal/domain/repositories"
)

// PostgresRequirementRepository implements the RequirementRepository interface
type PostgresRequirementRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewRequirementRepository creates a new requirement repository
func NewRequirementRepository(config *RepositoryConfig) repositories.RequirementRepository {
	return &PostgresRequirementRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new requirement
func (r *PostgresRequirementRepository) Create(ctx context.Context, requirement *models.Requirement) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, content, priority, status, version, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, r.tables.Requirements)

	err := r.pool.QueryRow(ctx, query,
		requirement.ID,
		requirement.Title,
		requirement.Content,
		requirement.Priority,
		requirement.Status,
		requirement.Version,
		requirement.CreatorID,
		requirement.CreatedAt,
		requirement.UpdatedAt,
	).Scan(&requirement.ID, &requirement.CreatedAt, &requirement.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("creator %s: %w", requirement.CreatorID, domain.ErrNotFound)
		}
		return fmt.Errorf("create requirement: %w", err)
	}

	return nil
}

// List retrieves all requirements, newest first
func (r *PostgresRequirementRepository) List(ctx context.Context) ([]models.Requirement, error) {
	query := fmt.Sprintf(`
		SELECT id, title, content, priority, status, version, creator_id, created_at, updated_at
		FROM %s
		ORDER BY created_at DESC
	`, r.tables.Requirements)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()

	requirements := []models.Requirement{}
	for rows.Next() {
		var req models.Requirement
		if err := rows.Scan(
			&req.ID,
			&req.Title,
			&req.Content,
			&req.Priority,
			&req.Status,
			&req.Version,
			&req.CreatorID,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		requirements = append(requirements, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requirements: %w", err)
	}

	return requirements, nil
}

// GetByID retrieves a requirement by ID
func (r *PostgresRequirementRepository) GetByID(ctx context.Context, id string) (*models.Requirement, error) {
	query := fmt.Sprintf(`
		SELECT id, title, content, priority, status, version, creator_id, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Requirements)

	var req models.Requirement
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.Title,
		&req.Content,
		&req.Priority,
		&req.Status,
		&req.Version,
		&req.CreatorID,
		&req.CreatedAt,
		&req.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("requirement %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get requirement: %w", err)
	}

	return &req, nil
}

// Update persists the requirement's mutable fields and bumped version
func (r *PostgresRequirementRepository) Update(ctx context.Context, requirement *models.Requirement) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $2, content = $3, priority = $4, status = $5, version = $6, updated_at = $7
		WHERE id = $1
	`, r.tables.Requirements)

	tag, err := r.pool.Exec(ctx, query,
		requirement.ID,
		requirement.Title,
		requirement.Content,
		requirement.Priority,
		requirement.Status,
		requirement.Version,
		requirement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update requirement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("requirement %s: %w", requirement.ID, domain.ErrNotFound)
	}

	return nil
}
