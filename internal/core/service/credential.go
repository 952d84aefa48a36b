package service

import (
	"context"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
)

// UserRepository defines the storage interface for user operations.
type UserRepository interface {
	// Create assigns an ID and stores the user.
	// Returns domain.ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByEmail retrieves a user by email (case-sensitive).
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CredentialService handles registration and password verification.
type CredentialService struct {
	repo UserRepository

	// dummyHash is verified against when the email is unknown so a
	// failed lookup costs the same as a failed password check.
	dummyHash string
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(repo UserRepository) (*CredentialService, error) {
	dummy, err := domain.HashPassword("tms-dummy-credential")
	if err != nil {
		return nil, err
	}

	return &CredentialService{
		repo:      repo,
		dummyHash: dummy,
	}, nil
}

// RegisterRequest contains parameters for registration.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Register validates the registration fields, hashes the password and
// stores the new user. Field validation runs before the duplicate-email
// check, so invalid input never reveals whether an email is taken.
func (s *CredentialService) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	if err := domain.ValidateRegistration(req.Name, req.Email, req.Password); err != nil {
		return nil, err
	}

	hash, err := domain.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, domain.NewUser(req.Name, req.Email, hash))
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Verify checks an email and password pair.
//
// Unknown email and wrong password both return ErrInvalidCredentials,
// and both paths perform one password hash so response timing does not
// reveal which case occurred.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		domain.VerifyPassword(password, s.dummyHash)
		return nil, domain.ErrInvalidCredentials
	}

	if !domain.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
