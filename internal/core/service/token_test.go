package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)

	token, err := svc.Issue("alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestTokenService_ValidateIsRepeatable(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)

	token, err := svc.Issue("bob@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	first, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("first Validate returned error: %v", err)
	}
	second, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("second Validate returned error: %v", err)
	}
	if *first != *second {
		t.Fatalf("repeated validation disagrees: %+v vs %+v", first, second)
	}
}

func TestTokenService_RejectsMalformed(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)

	if _, err := svc.Validate("not-a-jwt"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_RejectsTamperedSignature(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)
	other := NewTokenService("different-secret", time.Hour)

	token, err := other.Issue("eve@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestTokenService_RejectsTamperedPayload(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)

	token, err := svc.Issue("bob@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	// flip a character in the payload
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered payload, got %v", err)
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)

	issued := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("carol@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// one second before expiry: still valid
	svc.now = func() time.Time { return issued.Add(time.Hour - time.Second) }
	if _, err := svc.Validate(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// exactly at expiry: invalid
	svc.now = func() time.Time { return issued.Add(time.Hour) }
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid at the expiry instant, got %v", err)
	}

	// after expiry: invalid
	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after expiry, got %v", err)
	}
}

func TestTokenService_ZeroTTLDefaults(t *testing.T) {
	svc := NewTokenService("top-secret", 0)

	token, err := svc.Issue("dave@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, got)
	}
}
