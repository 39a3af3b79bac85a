package seed

import (
	"context"
	"log/slog"
	"time"

	"devforge/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CollabSeeder seeds demo collaboration data (users, requirements, tasks,
// documents) for local development.
type CollabSeeder struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewCollabSeeder creates a new collaboration seeder
func NewCollabSeeder(pool *pgxpool.Pool, tables *postgres.TableNames, logger *slog.Logger) *CollabSeeder {
	return &CollabSeeder{
		pool:   pool,
		tables: tables,
		logger: logger,
	}
}

// Fixed ids keep reseeding idempotent; every insert is ON CONFLICT DO NOTHING.
const (
	demoAnalystID   = "11111111-1111-1111-1111-111111111111"
	demoArchitectID = "22222222-2222-2222-2222-222222222222"
	demoDeveloperID = "33333333-3333-3333-3333-333333333333"
	demoTesterID    = "44444444-4444-4444-4444-444444444444"

	demoRequirementID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	demoTaskID        = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	demoDocumentID    = "cccccccc-cccc-cccc-cccc-cccccccccccc"
)

type demoUser struct {
	id       string
	username string
	email    string
	password string
	role     string
}

// SeedDemoData inserts one user per role plus a small requirement, task and
// document chain so a fresh environment has something to show.
func (s *CollabSeeder) SeedDemoData(ctx context.Context) error {
	now := time.Now()

	users := []demoUser{
		{demoAnalystID, "ana", "ana@example.com", "ana123", "analyst"},
		{demoArchitectID, "arch", "arch@example.com", "arch123", "architect"},
		{demoDeveloperID, "dev", "dev@example.com", "dev123", "developer"},
		{demoTesterID, "tess", "tess@example.com", "tess123", "tester"},
	}

	userQuery := `INSERT INTO ` + s.tables.Users + ` (id, username, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`
	for _, u := range users {
		if _, err := s.pool.Exec(ctx, userQuery, u.id, u.username, u.email, u.password, u.role, now); err != nil {
			return err
		}
		s.logger.Info("seeded user", "username", u.username, "role", u.role)
	}

	reqQuery := `INSERT INTO ` + s.tables.Requirements + ` (id, title, content, priority, status, version, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, reqQuery,
		demoRequirementID,
		"User registration and login",
		"Visitors register with a username, email and password, then log in to receive a session token.",
		"high", "confirmed", 1, demoAnalystID, now, now,
	); err != nil {
		return err
	}
	s.logger.Info("seeded requirement", "id", demoRequirementID)

	taskQuery := `INSERT INTO ` + s.tables.Tasks + ` (id, name, status, assignee_id, requirement_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, taskQuery,
		demoTaskID,
		"Implement registration endpoint",
		"developing", demoDeveloperID, demoRequirementID, now,
	); err != nil {
		return err
	}
	s.logger.Info("seeded task", "id", demoTaskID)

	docQuery := `INSERT INTO ` + s.tables.Documents + ` (id, title, doc_type, content, task_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, docQuery,
		demoDocumentID,
		"Registration API sketch",
		"architecture",
		"POST /api/users/register accepts username, email and password, and returns the created user.",
		demoTaskID, now, now,
	); err != nil {
		return err
	}
	s.logger.Info("seeded document", "id", demoDocumentID)

	return nil
}
