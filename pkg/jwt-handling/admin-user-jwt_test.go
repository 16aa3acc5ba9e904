package jwthandling

import (
	"testing"
	"time"
)

func TestAdminUserTokenRoundTrip(t *testing.T) {
	token, err := GenerateNewAdminUserToken(time.Minute, "user-1", "admin@example.com", "admin", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, valid, err := ValidateAdminUserToken(token, "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected token to be valid")
	}
	if claims.ID != "user-1" || claims.Email != "admin@example.com" || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAdminUserTokenWrongKey(t *testing.T) {
	token, err := GenerateNewAdminUserToken(time.Minute, "user-1", "admin@example.com", "admin", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, valid, err := ValidateAdminUserToken(token, "other-key")
	if err == nil && valid {
		t.Error("expected validation to fail with wrong key")
	}
}

func TestAdminUserTokenExpired(t *testing.T) {
	token, err := GenerateNewAdminUserToken(-time.Minute, "user-1", "admin@example.com", "admin", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, valid, err := ValidateAdminUserToken(token, "test-key")
	if err == nil {
		t.Error("expected error for expired token")
	}
	if valid {
		t.Error("expected expired token to be invalid")
	}
}
