package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
)

func newTokenService(t *testing.T, now func() time.Time) *TokenService {
	t.Helper()
	svc, err := NewTokenService(&TokenServiceConfig{
		Secret: []byte("test-signing-secret"),
		Now:    now,
	})
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	return svc
}

func testUser() *domain.User {
	return &domain.User{ID: 7, Name: "Alice", Email: "alice@example.com"}
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	if _, err := NewTokenService(&TokenServiceConfig{}); err == nil {
		t.Fatal("NewTokenService without secret should fail")
	}
	if _, err := NewTokenService(nil); err == nil {
		t.Fatal("NewTokenService(nil) should fail")
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTokenService(t, nil)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("claims.UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("claims.Email = %q", claims.Email)
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	svc := newTokenService(t, func() time.Time { return clock })

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Just inside the 24h window.
	clock = issued.Add(24*time.Hour - time.Minute)
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("Verify just before expiry error = %v", err)
	}

	// Just past the window.
	clock = issued.Add(24*time.Hour + time.Minute)
	_, err = svc.Verify(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("Verify after expiry error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := newTokenService(t, nil)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q) error = %v, want ErrTokenMalformed", token, err)
		}
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := newTokenService(t, nil)
	verifier, err := NewTokenService(&TokenServiceConfig{Secret: []byte("a different secret")})
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("Verify with wrong secret error = %v, want ErrTokenMalformed", err)
	}
}

func TestTokenService_Verify_TamperedPayload(t *testing.T) {
	svc := newTokenService(t, nil)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if tampered == token {
		tampered = token[:len(token)-4] + "BBBB"
	}
	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("Verify tampered token error = %v, want ErrTokenMalformed", err)
	}
}
