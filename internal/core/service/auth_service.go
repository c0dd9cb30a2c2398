package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthclaim/portal-api/internal/core/domain"
	"github.com/healthclaim/portal-api/internal/core/ports"
)

// MinPasswordLength applies to registration and password changes.
const MinPasswordLength = 6

// AuthService implements registration, login and self-service account updates.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAuthService wires the auth flows. throttle may be nil, in which case
// failed logins are not tracked.
func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	throttle ports.LoginThrottle,
	logger zerolog.Logger,
) *AuthService {
	if throttle == nil {
		throttle = noopThrottle{}
	}
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		throttle: throttle,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if err := domain.ValidateProfile(input.Role, input.Profile); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "this field is required")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Name:         name,
		Role:         input.Role,
		Profile:      input.Profile,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates against the (email, role) pair. Role is part of the
// lookup key, so correct credentials under the wrong role are rejected.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" || input.Role == "" {
		return nil, domain.ErrMissingLoginFields
	}

	key := throttleKey(email, input.Role)
	allowed, err := s.throttle.Allowed(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
	} else if !allowed {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmailAndRole(ctx, email, input.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, key)
			return nil, domain.ErrInvalidCredentialsOrRole
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.recordFailure(ctx, key)
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	user.LastLogin = &now
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	if err := s.throttle.Reset(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("failed to reset login throttle")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// UpdateProfile applies a non-empty name and shallow-merges a non-empty
// profile. The record is saved even when nothing changed.
func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, input ports.UpdateProfileInput) (*domain.User, error) {
	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if len(input.Profile) > 0 {
		user.Profile = user.Profile.Merge(input.Profile)
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.ErrMissingPasswordFields
	}
	if len(newPassword) < MinPasswordLength {
		return domain.NewValidationError("newPassword", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return domain.ErrIncorrectPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	previous := user.PasswordHash
	user.PasswordHash = hash
	if err := s.repo.Save(ctx, user); err != nil {
		user.PasswordHash = previous
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if err := s.throttle.RecordFailure(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}

func throttleKey(email string, role domain.Role) string {
	return string(role) + ":" + email
}

type noopThrottle struct{}

func (noopThrottle) Allowed(context.Context, string) (bool, error) { return true, nil }
func (noopThrottle) RecordFailure(context.Context, string) error   { return nil }
func (noopThrottle) Reset(context.Context, string) error           { return nil }
