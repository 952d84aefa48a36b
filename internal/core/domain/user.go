package domain

import (
	"regexp"
	"strings"
	"time"
)

// User constraints.
const (
	// MinNameLength is the minimum user name length after trimming.
	MinNameLength = 2

	// MinPasswordLength is the minimum password length in bytes.
	MinPasswordLength = 6
)

// emailPattern is the basic local@domain.tld shape accepted at registration.
// Matching is case-sensitive, as is email uniqueness.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User represents a registered account.
//
// PasswordHash is an argon2id digest and is never serialized; the JSON shape
// of a User is the "safe view" exposed by the API.
type User struct {
	// ID is the unique identifier, assigned from a process-wide
	// monotonic counter at creation.
	ID int64 `json:"id"`

	// Name is the display name as submitted.
	Name string `json:"name"`

	// Email is the case-sensitive uniqueness key across all users.
	Email string `json:"email"`

	// PasswordHash is the argon2id digest of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the registration timestamp (immutable).
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser creates a User with the given fields. The ID is assigned by the
// store at creation.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// Clone returns a copy of the user.
func (u *User) Clone() *User {
	clone := *u
	return &clone
}

// ValidateRegistration checks the registration fields in a fixed order
// (name, then email, then password) and returns a validation error naming
// the first failing field.
func ValidateRegistration(name, email, password string) error {
	if len(strings.TrimSpace(name)) < MinNameLength {
		return NewValidationError("Name must be at least 2 characters")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("Valid email is required")
	}
	if len(password) < MinPasswordLength {
		return NewValidationError("Password must be at least 6 characters")
	}
	return nil
}

// IsValidEmail reports whether email matches the accepted shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
