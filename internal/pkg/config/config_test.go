package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "5000" || cfg.Env != "development" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017/patientdb" {
		t.Fatalf("unexpected mongo uri: %s", cfg.Mongo.URI)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("unexpected token ttl: %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 12 || cfg.Auth.LoginMaxAttempts != 5 || cfg.Auth.LoginLockoutWindow != 15*time.Minute {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
	if !cfg.InsecureSecret() {
		t.Fatalf("expected insecure default secret")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("development config should validate, got %v", err)
	}
}

func TestSigningSecret_Precedence(t *testing.T) {
	cfg, _ := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "primary",
		"SECRET_KEY": "secondary",
	}))
	if got := cfg.SigningSecret(); got != "primary" {
		t.Fatalf("expected JWT_SECRET to win, got %s", got)
	}

	cfg, _ = LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SECRET_KEY": "secondary",
	}))
	if got := cfg.SigningSecret(); got != "secondary" {
		t.Fatalf("expected SECRET_KEY fallback, got %s", got)
	}
}

func TestValidate_ProductionRejectsDefaultSecret(t *testing.T) {
	cfg, _ := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV": "production",
	}))
	if err := cfg.Validate(); !errors.Is(err, ErrInsecureSecret) {
		t.Fatalf("expected ErrInsecureSecret, got %v", err)
	}

	cfg, _ = LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":        "production",
		"JWT_SECRET": "a-real-secret",
	}))
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid production config, got %v", err)
	}
}

func TestLoadWith_InvalidValue(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"TOKEN_TTL": "seven days",
	}))
	if err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
