package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthclaim/portal-api/internal/core/domain"
)

type stubVerifier struct {
	tokens map[string]string
	err    error
}

func (s stubVerifier) Verify(token string) (string, error) {
	if id, ok := s.tokens[token]; ok {
		return id, nil
	}
	if s.err != nil {
		return "", s.err
	}
	return "", domain.ErrInvalidToken
}

type stubFinder struct {
	users map[string]*domain.User
	err   error
}

func (s stubFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

var alice = &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RolePatient, IsActive: true}

func newAuth() echo.MiddlewareFunc {
	return Authenticate(
		stubVerifier{tokens: map[string]string{"good": "u1", "orphan": "u404"}},
		stubFinder{users: map[string]*domain.User{"u1": alice}},
		zerolog.Nop(),
	)
}

func runAuth(t *testing.T, mw echo.MiddlewareFunc, header string) (called bool, identity domain.Identity, hasIdentity bool, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	err = mw(func(c echo.Context) error {
		called = true
		identity, hasIdentity = CurrentIdentity(c)
		return nil
	})(c)
	return called, identity, hasIdentity, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := newAuth()(func(c echo.Context) error {
		called = true
		user, ok := CurrentUser(c)
		if !ok || user.ID != "u1" {
			t.Fatalf("user not attached: %+v", user)
		}
		id, ok := CurrentIdentity(c)
		if !ok || id.ID != "u1" || id.Role != domain.RolePatient || !id.IsActive {
			t.Fatalf("identity not attached: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	called, id, ok, err := runAuth(t, newAuth(), "bearer good")
	if err != nil || !called || !ok || id.ID != "u1" {
		t.Fatalf("expected lower-case scheme to authenticate: called=%v ok=%v err=%v", called, ok, err)
	}
}

func TestAuthenticate_AnonymousPassThrough(t *testing.T) {
	for _, header := range []string{"", "Token abc", "Basic dXNlcjpwYXNz"} {
		called, _, ok, err := runAuth(t, newAuth(), header)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", header, err)
		}
		if !called {
			t.Fatalf("%q: next not called", header)
		}
		if ok {
			t.Fatalf("%q: no identity should be attached", header)
		}
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	cases := map[string]string{
		"no token":        "Bearer",
		"too many tokens": "Bearer good extra",
		"invalid token":   "Bearer forged",
		"unknown user":    "Bearer orphan",
	}
	for name, header := range cases {
		called, _, _, err := runAuth(t, newAuth(), header)
		if called {
			t.Fatalf("%s: should not reach next", name)
		}
		if !errors.Is(err, domain.ErrAuthenticationFailed) {
			t.Fatalf("%s: expected ErrAuthenticationFailed, got %v", name, err)
		}
	}
}

func TestAuthenticate_ExpiredTokenKeepsCause(t *testing.T) {
	mw := Authenticate(stubVerifier{err: domain.ErrTokenExpired}, stubFinder{}, zerolog.Nop())

	_, _, _, err := runAuth(t, mw, "Bearer stale")
	if !errors.Is(err, domain.ErrAuthenticationFailed) || !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrAuthenticationFailed wrapping ErrTokenExpired, got %v", err)
	}
}

func TestAuthenticate_StoreFailureIsNotAnAuthFailure(t *testing.T) {
	boom := errors.New("connection refused")
	mw := Authenticate(
		stubVerifier{tokens: map[string]string{"good": "u1"}},
		stubFinder{err: boom},
		zerolog.Nop(),
	)

	_, _, _, err := runAuth(t, mw, "Bearer good")
	if errors.Is(err, domain.ErrAuthenticationFailed) || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
