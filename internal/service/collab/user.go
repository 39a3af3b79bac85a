package collab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"devforge/internal/auth"
	"devforge/internal/config"
	"devforge/internal/domain"
	"devforge/internal/domain/models"
	"devforge/internal/domain/repositories"
	collabSvc "devforge/internal/domain/services/collab"
)

// userService implements the UserService interface
type userService struct {
	userRepo repositories.UserRepository
	issuer   *auth.TokenIssuer
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	issuer *auth.TokenIssuer,
	logger *slog.Logger,
) collabSvc.UserService {
	return &userService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Register creates an account
func (s *userService) Register(ctx context.Context, req *collabSvc.RegisterRequest) (*models.User, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	role := req.Role
	if role == "" {
		role = "developer"
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  req.Password,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"id", user.ID,
		"username", user.Username,
		"role", user.Role,
	)

	return user, nil
}

// Login verifies credentials and issues a bearer token. The password check
// is a plain comparison against the stored value; credential hardening is
// out of scope for this service.
func (s *userService) Login(ctx context.Context, req *collabSvc.LoginRequest) (*collabSvc.LoginResult, error) {
	if err := s.validateLoginRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Hide whether the account exists.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.UnauthorizedError{Message: "invalid email or password"}
		}
		return nil, err
	}

	if user.Password != req.Password {
		return nil, &domain.UnauthorizedError{Message: "invalid email or password"}
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "id", user.ID)

	return &collabSvc.LoginResult{User: user, Token: token}, nil
}

// validateRegisterRequest validates a register request
func (s *userService) validateRegisterRequest(req *collabSvc.RegisterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username,
			validation.Required,
			validation.Length(1, config.MaxUsernameLength),
		),
		validation.Field(&req.Email,
			validation.Required,
			validation.Length(3, config.MaxEmailLength),
			is.Email,
		),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role,
			validation.In("analyst", "architect", "developer", "tester", ""),
		),
	)
}

// validateLoginRequest validates a login request
func (s *userService) validateLoginRequest(req *collabSvc.LoginRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
