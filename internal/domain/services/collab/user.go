package collab

import (
	"context"

	"devforge/internal/domain/models"
)

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for exchanging credentials for a token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the authenticated user and the issued bearer token
type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines account operations
type UserService interface {
	// Register creates an account
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)

	// Login verifies credentials and issues a bearer token
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}
