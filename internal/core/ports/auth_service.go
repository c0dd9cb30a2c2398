package ports

import (
	"context"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

// PasswordHasher produces and checks one-way password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never fails loudly: any error is reported as a mismatch.
	Verify(plaintext, hash string) bool
}

// TokenService mints and checks bearer tokens.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the subject user id, or domain.ErrTokenExpired /
	// domain.ErrInvalidToken.
	Verify(token string) (string, error)
}

// LoginThrottle tracks failed logins per account key.
type LoginThrottle interface {
	Allowed(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
	Profile  domain.Profile
}

type LoginInput struct {
	Email    string
	Password string
	Role     domain.Role
}

type UpdateProfileInput struct {
	Name    string
	Profile domain.Profile
}

// AuthResult is returned by the flows that mint a token.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	UpdateProfile(ctx context.Context, user *domain.User, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error
}
