package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  string
	}{
		{"valid", "Alice", "alice@example.com", "secret1", ""},
		{"name too short", "A", "alice@example.com", "secret1", "Name must be at least 2 characters"},
		{"name whitespace only", "   ", "alice@example.com", "secret1", "Name must be at least 2 characters"},
		{"email missing at", "Alice", "alice.example.com", "secret1", "Valid email is required"},
		{"email missing tld", "Alice", "alice@example", "secret1", "Valid email is required"},
		{"email with space", "Alice", "al ice@example.com", "secret1", "Valid email is required"},
		{"password too short", "Alice", "alice@example.com", "12345", "Password must be at least 6 characters"},
		{"empty everything", "", "", "", "Name must be at least 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.userName, tt.email, tt.password)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateRegistration() = %v, want nil", err)
				}
				return
			}
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("ValidateRegistration() = %v, want *DomainError", err)
			}
			if de.Message != tt.wantErr {
				t.Fatalf("message = %q, want %q", de.Message, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistration_FieldOrder(t *testing.T) {
	// All three fields invalid: the name check must win.
	err := ValidateRegistration("", "nope", "123")
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("ValidateRegistration() = %v, want *DomainError", err)
	}
	if !strings.HasPrefix(de.Message, "Name") {
		t.Fatalf("message = %q, want name error first", de.Message)
	}
}

func TestIsValidEmail_CaseSensitive(t *testing.T) {
	if !IsValidEmail("Alice@Example.COM") {
		t.Fatal("mixed-case email should match the shape")
	}
	if IsValidEmail("@example.com") {
		t.Fatal("empty local part should not match")
	}
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	u := NewUser("Alice", "alice@example.com", "$argon2id$...")
	u.ID = 1

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), "argon2id") {
		t.Fatalf("serialized user leaks password hash: %s", raw)
	}
	if !strings.Contains(string(raw), `"createdAt"`) {
		t.Fatalf("serialized user missing createdAt: %s", raw)
	}
}

func TestUser_Clone(t *testing.T) {
	u := NewUser("Alice", "alice@example.com", "hash")
	u.ID = 7

	clone := u.Clone()
	clone.Name = "Bob"

	if u.Name != "Alice" {
		t.Fatalf("mutating clone changed original: %q", u.Name)
	}
	if clone.ID != 7 {
		t.Fatalf("clone ID = %d, want 7", clone.ID)
	}
}
