package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/validate"
	"github.com/leadsite/backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs tokens for authenticated identities.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, time.Time, error)
}

// dummyHash is compared against when the username is unknown, so that a
// missing account costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("unknown-admin-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy bcrypt hash: %v", err))
	}
	return h
})

type authServiceImpl struct {
	users    repository.AdminUserRepository
	sessions repository.SessionRepository
	tokens   TokenIssuer
	now      func() time.Time
	compare  func(hash, password []byte) error
}

// NewAuthService creates an AuthService.
func NewAuthService(users repository.AdminUserRepository, sessions repository.SessionRepository, tokens TokenIssuer) AuthService {
	return &authServiceImpl{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		now:      time.Now,
		compare:  bcrypt.CompareHashAndPassword,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, in LoginInput, client model.ClientInfo) (*LoginResult, error) {
	var errs validate.Errors
	errs.Check(validate.Required(in.Username), "Username is required")
	errs.Check(in.Password != "", "Password is required")
	if err := errs.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, repository.ErrNotFound) {
		_ = s.compare(dummyHash(), []byte(in.Password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin user: %w", err)
	}
	if s.compare([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	token, expiresAt, err := s.tokens.Issue(auth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// Neither write below is allowed to fail the login.
	if err := s.users.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		slog.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}
	session := &model.AdminSession{
		UserID:       user.ID,
		SessionToken: token,
		ExpiresAt:    expiresAt,
		IPAddress:    client.IPAddress,
		UserAgent:    client.UserAgent,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		slog.Warn("failed to record admin session", "user_id", user.ID, "error", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User: LoginUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	n, err := s.sessions.DeleteByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	slog.Debug("admin sessions removed", "count", n)
	return nil
}

// HashPassword returns the bcrypt hash stored for an admin password.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
