package collab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"devforge/internal/auth"
	"devforge/internal/domain"
	"devforge/internal/domain/models"
	collabSvc "devforge/internal/domain/services/collab"
)

// fakeUserRepo keeps users in memory, keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return &domain.ConflictError{Message: "user already exists", ResourceType: "user"}
	}
	copied := *user
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func newTestUserService(t *testing.T, repo *fakeUserRepo) (collabSvc.UserService, *auth.TokenIssuer) {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer failed: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserService(repo, issuer, logger), issuer
}

func TestRegisterDefaultsRole(t *testing.T) {
	svc, _ := newTestUserService(t, newFakeUserRepo())

	user, err := svc.Register(context.Background(), &collabSvc.RegisterRequest{
		Username: "ada",
		Email:    "Ada@Example.com",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != "developer" {
		t.Errorf("expected default role developer, got %q", user.Role)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.ID == "" {
		t.Error("expected generated user ID")
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc, _ := newTestUserService(t, newFakeUserRepo())

	_, err := svc.Register(context.Background(), &collabSvc.RegisterRequest{
		Username: "ada",
		Email:    "not-an-email",
		Password: "pw",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc, issuer := newTestUserService(t, repo)

	user, err := svc.Register(context.Background(), &collabSvc.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), &collabSvc.LoginRequest{
		Email:    "ada@example.com",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.User.ID != user.ID {
		t.Errorf("login returned wrong user: %s", result.User.ID)
	}

	subject, err := issuer.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if subject != user.ID {
		t.Errorf("token subject %s, expected %s", subject, user.ID)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestUserService(t, repo)

	if _, err := svc.Register(context.Background(), &collabSvc.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "pw",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), &collabSvc.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	var unauthorized *domain.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Errorf("expected UnauthorizedError, got %v", err)
	}
}

func TestLoginUnknownAccountLooksLikeBadPassword(t *testing.T) {
	svc, _ := newTestUserService(t, newFakeUserRepo())

	_, err := svc.Login(context.Background(), &collabSvc.LoginRequest{
		Email:    "ghost@example.com",
		Password: "pw",
	})
	var unauthorized *domain.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Errorf("unknown account must not be distinguishable, got %v", err)
	}
}
