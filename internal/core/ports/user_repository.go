package ports

import (
	"context"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

// UserRepository defines persistence operations for portal accounts.
// Email uniqueness is store-wide and must be enforced atomically by the store.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// Returns domain.ErrDuplicateEmail when the email already exists under any role.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmailAndRole returns the active user registered with email under role.
	FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Save replaces the stored record and stamps UpdatedAt.
	Save(ctx context.Context, user *domain.User) error
	DeleteAll(ctx context.Context) (int64, error)
}
