package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"devforge/internal/domain"
	"devforge/internal/domain/models"
	"devforge/internal/domain/repositories"
)

// PostgresTaskRepository implements the TaskRepository interface
type PostgresTaskRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(config *RepositoryConfig) repositories.TaskRepository {
	return &PostgresTaskRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new task
func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, status, assignee_id, requirement_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, r.tables.Tasks)

	err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Name,
		task.Status,
		task.AssigneeID,
		task.RequirementID,
		task.CreatedAt,
	).Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("task references a missing assignee or requirement: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// List retrieves all tasks, newest first
func (r *PostgresTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	query := fmt.Sprintf(`
		SELECT id, name, status, assignee_id, requirement_id, created_at
		FROM %s
		ORDER BY created_at DESC
	`, r.tables.Tasks)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID,
			&task.Name,
			&task.Status,
			&task.AssigneeID,
			&task.RequirementID,
			&task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// GetByID retrieves a task by ID
func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := fmt.Sprintf(`
		SELECT id, name, status, assignee_id, requirement_id, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Tasks)

	var task models.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.Name,
		&task.Status,
		&task.AssigneeID,
		&task.RequirementID,
		&task.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &task, nil
}
