package domain

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=16384,t=2,p=2$") {
		t.Fatalf("hash = %q, want argon2id prefix with fixed params", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Fatalf("hash has %d segments, want 6", len(parts))
	}
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ by salt")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !VerifyPassword("correct horse", hash) {
		t.Fatal("correct password should verify")
	}
	if VerifyPassword("wrong horse", hash) {
		t.Fatal("wrong password should not verify")
	}
	if VerifyPassword("", hash) {
		t.Fatal("empty password should not verify")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=16384,t=2,p=2$c2FsdA$aGFzaA"},
		{"too few segments", "$argon2id$v=19$c2FsdA$aGFzaA"},
		{"bad salt base64", "$argon2id$v=19$m=16384,t=2,p=2$!!!$aGFzaA"},
		{"bad hash base64", "$argon2id$v=19$m=16384,t=2,p=2$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword("anything", tt.hash) {
				t.Fatalf("VerifyPassword with %s hash = true, want false", tt.name)
			}
		})
	}
}
