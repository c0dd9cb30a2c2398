package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

// Policy is a per-route access requirement evaluated after Authenticate.
type Policy struct {
	authenticated bool
	roles         map[domain.Role]struct{}
}

// AllowAny admits anonymous callers.
var AllowAny = Policy{}

// RequireAuthenticated admits any resolved, active identity.
func RequireAuthenticated() Policy {
	return Policy{authenticated: true}
}

// RequireRole admits resolved identities holding one of roles.
func RequireRole(roles ...domain.Role) Policy {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return Policy{authenticated: true, roles: allowed}
}

// Check returns nil when identity satisfies p. ok is false for anonymous
// requests.
func (p Policy) Check(identity domain.Identity, ok bool) error {
	if !p.authenticated {
		return nil
	}
	if !ok || identity.ID == "" || !identity.IsActive {
		return domain.ErrNotAuthenticated
	}
	if len(p.roles) == 0 {
		return nil
	}
	if _, allowed := p.roles[identity.Role]; !allowed {
		return domain.ErrForbidden
	}
	return nil
}

// Guard enforces p on the route it wraps: 401 without an identity, 403 on a
// role mismatch.
func Guard(p Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if err := p.Check(identity, ok); err != nil {
				return err
			}
			return next(c)
		}
	}
}
