package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if !h.Verify("s3cret!", hash) {
		t.Fatalf("expected password to verify")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, _ := h.Hash("same-password")
	b, _ := h.Hash("same-password")
	if a == b {
		t.Fatalf("expected different hashes for the same password")
	}
}

func TestBcryptHasher_VerifyNeverErrors(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, hash := range []string{"", "not-a-hash", "$2a$10$short"} {
		if h.Verify("anything", hash) {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != DefaultBcryptCost {
		t.Fatalf("expected default cost, got %d", got)
	}
	if got := NewBcryptHasher(1).cost; got != bcrypt.MinCost {
		t.Fatalf("expected min cost, got %d", got)
	}
	if got := NewBcryptHasher(99).cost; got != bcrypt.MaxCost {
		t.Fatalf("expected max cost, got %d", got)
	}
}
