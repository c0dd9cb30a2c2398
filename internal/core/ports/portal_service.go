package ports

import (
	"context"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

// PortalService serves the read-only dashboard data. It only depends on the
// auth core for the identity of the caller.
type PortalService interface {
	CoverageSummary(ctx context.Context, user *domain.User) (*domain.CoverageSummary, error)
	ListClaims(ctx context.Context, user *domain.User) ([]domain.Claim, error)
	ListNotifications(ctx context.Context, user *domain.User) ([]domain.Notification, error)
}
