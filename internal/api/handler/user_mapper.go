package handler

import (
	"time"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

// userResponse is the public shape of an account. It never carries the
// password hash.
type userResponse struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	Profile   map[string]any `json:"profile"`
	IsActive  bool           `json:"isActive"`
	LastLogin *string        `json:"lastLogin"`
	CreatedAt *string        `json:"createdAt"`
	UpdatedAt *string        `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	profile := map[string]any(u.Profile)
	if profile == nil {
		profile = map[string]any{}
	}

	var lastLogin *string
	if u.LastLogin != nil {
		lastLogin = isoTime(*u.LastLogin)
	}

	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Profile:   profile,
		IsActive:  u.IsActive,
		LastLogin: lastLogin,
		CreatedAt: isoTime(u.CreatedAt),
		UpdatedAt: isoTime(u.UpdatedAt),
	}
}

// isoTime renders t as ISO-8601 in UTC, or nil for the zero time.
func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
