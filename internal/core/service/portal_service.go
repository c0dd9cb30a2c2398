package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

// PortalService returns the static dashboard data. There is no claims store
// behind it; every caller sees the same sample records.
type PortalService struct {
	logger zerolog.Logger
}

func NewPortalService(logger zerolog.Logger) *PortalService {
	return &PortalService{logger: logger}
}

func (s *PortalService) CoverageSummary(_ context.Context, user *domain.User) (*domain.CoverageSummary, error) {
	return &domain.CoverageSummary{
		UserID:      user.ID,
		Name:        user.Name,
		InsuranceID: "INS12345",
		Coverage:    "Full",
		Expiry:      "2026-12-31",
	}, nil
}

func (s *PortalService) ListClaims(_ context.Context, user *domain.User) ([]domain.Claim, error) {
	s.logger.Debug().Str("user_id", user.ID).Msg("listing sample claims")
	return []domain.Claim{
		{
			ID:          "CLM-2024-001",
			Provider:    "City General Hospital",
			Service:     "Emergency Visit",
			Amount:      "$1,250",
			Status:      domain.ClaimApproved,
			Date:        "2024-01-15",
			Description: "Acute chest pain evaluation",
		},
		{
			ID:          "CLM-2024-002",
			Provider:    "Downtown Clinic",
			Service:     "Annual Physical",
			Amount:      "$350",
			Status:      domain.ClaimProcessing,
			Date:        "2024-01-10",
			Description: "Routine annual physical examination",
		},
		{
			ID:          "CLM-2024-003",
			Provider:    "Specialty Care Center",
			Service:     "Cardiology Consultation",
			Amount:      "$800",
			Status:      domain.ClaimDenied,
			Date:        "2024-01-05",
			Description: "Cardiac stress test and consultation",
		},
	}, nil
}

func (s *PortalService) ListNotifications(_ context.Context, user *domain.User) ([]domain.Notification, error) {
	s.logger.Debug().Str("user_id", user.ID).Msg("listing sample notifications")
	return []domain.Notification{
		{
			ID:      1,
			Type:    domain.NotificationApproval,
			Title:   "Claim Approved",
			Message: "Your emergency visit claim (CLM-2024-001) has been approved for $1,250",
			Time:    "2 hours ago",
		},
		{
			ID:      2,
			Type:    domain.NotificationActionRequired,
			Title:   "Documents Needed",
			Message: "Additional documentation required for claim CLM-2024-002",
			Time:    "1 day ago",
		},
		{
			ID:      3,
			Type:    domain.NotificationDenial,
			Title:   "Claim Denied",
			Message: "Claim CLM-2024-003 was denied. You can appeal this decision.",
			Read:    true,
			Time:    "3 days ago",
		},
	}, nil
}
