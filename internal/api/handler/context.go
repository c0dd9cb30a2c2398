package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/healthclaim/portal-api/internal/api/middleware"
	"github.com/healthclaim/portal-api/internal/core/domain"
)

// currentUser returns the caller resolved by the auth middleware. Routes are
// guarded before they get here, so a missing user means the handler was
// mounted without Authenticate; report it as unauthenticated rather than panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}
