package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
)

func TestUserStore_Create(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	created, err := store.Create(ctx, domain.NewUser("Alice", "alice@example.com", "hash"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("first user ID = %d, want 1", created.ID)
	}

	second, err := store.Create(ctx, domain.NewUser("Bob", "bob@example.com", "hash"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("second user ID = %d, want 2", second.ID)
	}
}

func TestUserStore_Create_DuplicateEmail(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, domain.NewUser("Alice", "alice@example.com", "hash")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := store.Create(ctx, domain.NewUser("Alice Again", "alice@example.com", "hash2"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserStore_Create_EmailCaseSensitive(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, domain.NewUser("Alice", "alice@example.com", "hash")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	// Different casing is a different email.
	if _, err := store.Create(ctx, domain.NewUser("Alice", "Alice@example.com", "hash")); err != nil {
		t.Fatalf("Create() with different casing error = %v, want nil", err)
	}
}

func TestUserStore_GetByEmail(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	created, err := store.Create(ctx, domain.NewUser("Alice", "alice@example.com", "hash"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("GetByEmail() ID = %d, want %d", got.ID, created.ID)
	}

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByEmail(unknown) error = %v, want ErrUserNotFound", err)
	}
	if _, err := store.GetByEmail(ctx, "ALICE@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("GetByEmail with different casing error = %v, want ErrUserNotFound", err)
	}
}

func TestUserStore_Get_ReturnsClone(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	created, _ := store.Create(ctx, domain.NewUser("Alice", "alice@example.com", "hash"))

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	got.Name = "Mallory"

	again, _ := store.Get(ctx, created.ID)
	if again.Name != "Alice" {
		t.Fatalf("stored user mutated through returned copy: %q", again.Name)
	}
}

func TestUserStore_ConcurrentCreate(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@example.com", i)
			if _, err := store.Create(ctx, domain.NewUser("User", email, "hash")); err != nil {
				t.Errorf("Create(%s) error = %v", email, err)
			}
		}(i)
	}
	wg.Wait()

	if got := store.Count(); got != n {
		t.Fatalf("Count() = %d, want %d", got, n)
	}
}
