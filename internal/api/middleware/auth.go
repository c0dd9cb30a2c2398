package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthclaim/portal-api/internal/api/metrics"
	"github.com/healthclaim/portal-api/internal/core/domain"
)

const (
	contextKeyUser     = "auth.user"
	contextKeyIdentity = "auth.identity"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder loads the subject of a verified token.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Authenticate resolves the bearer token on each request into a user.
//
// Requests without an Authorization header, or with a scheme other than
// Bearer, continue anonymously and the route guard decides. A Bearer header
// that does not carry exactly one token, a token that fails verification, or
// a token whose user no longer exists is rejected with
// domain.ErrAuthenticationFailed. The concrete reason is only logged.
func Authenticate(tokens TokenVerifier, users UserFinder, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
			if len(parts) == 0 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			reject := func(result string, cause error) error {
				metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()
				log.Debug().
					Err(cause).
					Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
					Str("path", c.Path()).
					Msg("authentication rejected")
				return fmt.Errorf("%w: %w", domain.ErrAuthenticationFailed, cause)
			}

			switch {
			case len(parts) == 1:
				return reject("malformed_header", errors.New("invalid token header: no credentials provided"))
			case len(parts) > 2:
				return reject("malformed_header", errors.New("invalid token header: token string should not contain spaces"))
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return reject("expired", err)
				}
				return reject("invalid", err)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return reject("unknown_user", err)
				}
				return fmt.Errorf("resolve token subject: %w", err)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(contextKeyUser, user)
			c.Set(contextKeyIdentity, user.Identity())
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Authenticate, if any.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(contextKeyUser).(*domain.User)
	return u, ok && u != nil
}

// CurrentIdentity returns the identity resolved by Authenticate, if any.
func CurrentIdentity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(contextKeyIdentity).(domain.Identity)
	return id, ok
}

// SetUser attaches user as the authenticated caller. Authenticate uses the
// same keys; tests use it to bypass token handling.
func SetUser(c echo.Context, user *domain.User) {
	c.Set(contextKeyUser, user)
	c.Set(contextKeyIdentity, user.Identity())
}
