package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrDuplicateEmail   = errors.New("user with this email already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrForbidden        = errors.New("access forbidden")
	ErrNotAuthenticated = errors.New("authentication credentials were not provided")
	// ErrAuthenticationFailed is returned for every rejected bearer token.
	// The concrete reason is wrapped alongside it for logging only.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")

	ErrMissingLoginFields       = errors.New("please provide email, password, and role")
	ErrInvalidCredentialsOrRole = errors.New("invalid credentials or role")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrTooManyAttempts          = errors.New("too many failed login attempts, try again later")

	ErrMissingPasswordFields = errors.New("please provide current and new password")
	ErrIncorrectPassword     = errors.New("current password is incorrect")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
