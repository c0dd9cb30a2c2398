package domain

// ClaimStatus is the adjudication state shown to the patient.
type ClaimStatus string

const (
	ClaimApproved   ClaimStatus = "approved"
	ClaimProcessing ClaimStatus = "processing"
	ClaimDenied     ClaimStatus = "denied"
)

// Progress is the completion percentage rendered by the dashboard.
func (s ClaimStatus) Progress() int {
	switch s {
	case ClaimApproved:
		return 100
	case ClaimProcessing:
		return 65
	default:
		return 0
	}
}

// Claim is a read-only claim summary.
type Claim struct {
	ID          string
	Provider    string
	Service     string
	Amount      string
	Status      ClaimStatus
	Date        string
	Description string
}

// NotificationType classifies a portal notification.
type NotificationType string

const (
	NotificationApproval       NotificationType = "approval"
	NotificationActionRequired NotificationType = "action_required"
	NotificationDenial         NotificationType = "denial"
)

// Notification is a message shown in the portal inbox.
type Notification struct {
	ID      int
	Type    NotificationType
	Title   string
	Message string
	Read    bool
	Time    string
}

// CoverageSummary is the insurance card shown on the patient dashboard.
type CoverageSummary struct {
	UserID      string
	Name        string
	InsuranceID string
	Coverage    string
	Expiry      string
}
