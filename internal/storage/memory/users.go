package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
	"github.com/Nenzy16/task-management-system/pkg/cmap"
)

// UserStore provides in-memory user storage with an email index.
type UserStore struct {
	// Primary index: UserID -> User
	users *cmap.Map[int64, *domain.User]

	// Secondary index: Email -> UserID (case-sensitive)
	emails *cmap.Map[string, int64]

	// nextID is the monotonic ID counter. IDs are never reused.
	nextID atomic.Int64

	// Global lock for operations requiring atomicity across indexes
	mu sync.Mutex
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users:  cmap.New[int64, *domain.User](),
		emails: cmap.New[string, int64](),
	}
}

// Create assigns an ID to the user and stores it.
// Returns ErrDuplicateEmail if the email is already registered.
func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emails.Has(user.Email) {
		return nil, domain.ErrDuplicateEmail
	}

	clone := user.Clone()
	clone.ID = s.nextID.Add(1)

	s.users.Set(clone.ID, clone)
	s.emails.Set(clone.Email, clone.ID)

	return clone.Clone(), nil
}

// Get retrieves a user by ID.
func (s *UserStore) Get(_ context.Context, id int64) (*domain.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user.Clone(), nil
}

// GetByEmail retrieves a user by email. The lookup is case-sensitive.
func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	id, ok := s.emails.Get(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	user, ok := s.users.Get(id)
	if !ok {
		// Index inconsistency - clean up orphaned email entry
		s.emails.Delete(email)
		return nil, domain.ErrUserNotFound
	}

	return user.Clone(), nil
}

// Count returns the total number of registered users.
func (s *UserStore) Count() int {
	return s.users.Count()
}
