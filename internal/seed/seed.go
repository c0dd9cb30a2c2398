// Package seed resets the user collection to the demo accounts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthclaim/portal-api/internal/core/domain"
	"github.com/healthclaim/portal-api/internal/core/ports"
)

// Run deletes every user and creates DemoUsers. A failed account is logged
// and skipped; the failures are returned joined alongside the created count.
func Run(ctx context.Context, repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) (int, error) {
	removed, err := repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: clear users: %w", err)
	}
	log.Info().Int64("removed", removed).Msg("cleared existing users")

	var (
		created int
		errs    []error
	)
	for _, du := range DemoUsers {
		if err := createUser(ctx, repo, hasher, du); err != nil {
			log.Error().Err(err).Str("email", du.Email).Msg("failed to create demo user")
			errs = append(errs, fmt.Errorf("%s: %w", du.Email, err))
			continue
		}
		created++
		log.Info().Str("email", du.Email).Str("role", string(du.Role)).Msg("created demo user")
	}

	return created, errors.Join(errs...)
}

func createUser(ctx context.Context, repo ports.UserRepository, hasher ports.PasswordHasher, du DemoUser) error {
	if err := domain.ValidateProfile(du.Role, du.Profile); err != nil {
		return err
	}

	hash, err := hasher.Hash(du.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Email:        domain.NormalizeEmail(du.Email),
		PasswordHash: hash,
		Name:         du.Name,
		Role:         du.Role,
		Profile:      du.Profile.Merge(nil),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}
