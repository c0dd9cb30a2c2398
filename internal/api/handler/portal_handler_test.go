package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/healthclaim/portal-api/internal/api/middleware"
	"github.com/healthclaim/portal-api/internal/core/domain"
	"github.com/healthclaim/portal-api/internal/core/service"
)

func TestPortalHandler_PatientMe(t *testing.T) {
	e := newEcho()
	handler := NewPortalHandler(service.NewPortalService(zerolog.Nop()))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/patient/me", nil), rec)
	middleware.SetUser(c, sampleUser())

	if err := handler.PatientMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["userId"] != "u1" || resp["name"] != "John Smith" || resp["insuranceId"] != "INS12345" {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

func TestPortalHandler_Claims(t *testing.T) {
	e := newEcho()
	handler := NewPortalHandler(service.NewPortalService(zerolog.Nop()))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/patient/claims", nil), rec)
	middleware.SetUser(c, sampleUser())

	if err := handler.Claims(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var claims []claimResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &claims); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(claims) != 3 {
		t.Fatalf("expected 3 claims, got %d", len(claims))
	}
	if claims[0].Status != "approved" || claims[0].Progress != 100 {
		t.Fatalf("unexpected first claim: %+v", claims[0])
	}
	if claims[1].Progress != 65 || claims[2].Progress != 0 {
		t.Fatalf("unexpected progress values: %+v", claims)
	}
}

func TestPortalHandler_Notifications(t *testing.T) {
	e := newEcho()
	handler := NewPortalHandler(service.NewPortalService(zerolog.Nop()))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/notifications", nil), rec)
	middleware.SetUser(c, sampleUser())

	if err := handler.Notifications(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var notes []notificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &notes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(notes) != 3 || notes[0].Type != "approval" || !notes[2].Read {
		t.Fatalf("unexpected notifications: %+v", notes)
	}
}

func TestPortalHandler_RequiresUser(t *testing.T) {
	e := newEcho()
	handler := NewPortalHandler(service.NewPortalService(zerolog.Nop()))

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/notifications", nil), httptest.NewRecorder())
	if err := handler.Notifications(c); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
