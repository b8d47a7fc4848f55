package service

import (
	"context"
	"time"

	"github.com/leadsite/backend/internal/model"
)

// LoginInput is the body of an admin login request.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUser is the account summary returned with a token.
type LoginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      LoginUser `json:"user"`
}

// AuthService authenticates admin accounts.
type AuthService interface {
	// Login checks the credentials and issues a token. It returns a
	// *validate.Errors for missing fields, ErrInvalidCredentials for an
	// unknown user or wrong password, and ErrAccountInactive for a disabled
	// account.
	Login(ctx context.Context, in LoginInput, client model.ClientInfo) (*LoginResult, error)

	// Logout removes the audit rows recorded for token. The token itself
	// stays valid until it expires.
	Logout(ctx context.Context, token string) error
}
