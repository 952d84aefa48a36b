package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
	"github.com/Nenzy16/task-management-system/pkg/cmap"
)

// TaskStore provides in-memory task storage with an owner index.
//
// Every read returns clones; every lookup is scoped to an owner so a
// task belonging to another user is indistinguishable from a missing
// one.
type TaskStore struct {
	// Primary index: TaskID -> Task
	tasks *cmap.Map[int64, *domain.Task]

	// Secondary index: OwnerID -> ordered task IDs
	owners *OwnerIndex

	// nextID is the monotonic ID counter, independent of the user ID
	// space. IDs are never reused, even after deletion.
	nextID atomic.Int64

	// Global lock for operations requiring atomicity across indexes
	mu sync.Mutex
}

// NewTaskStore creates a new in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:  cmap.New[int64, *domain.Task](),
		owners: NewOwnerIndex(),
	}
}

// Create assigns an ID to the task and stores it.
func (s *TaskStore) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := task.Clone()
	clone.ID = s.nextID.Add(1)

	s.tasks.Set(clone.ID, clone)
	s.owners.Add(clone.OwnerID, clone.ID)

	return clone.Clone(), nil
}

// Get retrieves a task by ID, scoped to the owner.
// A missing task and a foreign task both return ErrTaskNotFound.
func (s *TaskStore) Get(_ context.Context, ownerID, id int64) (*domain.Task, error) {
	task, ok := s.tasks.Get(id)
	if !ok || task.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// Update applies mutate to the stored task under the store lock and
// persists the result. The mutation sees a clone; an error from mutate
// leaves the stored task untouched.
func (s *TaskStore) Update(_ context.Context, ownerID, id int64, mutate func(*domain.Task) error) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks.Get(id)
	if !ok || existing.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}

	clone := existing.Clone()
	if err := mutate(clone); err != nil {
		return nil, err
	}

	// Owner and identity are immutable regardless of what mutate did.
	clone.ID = existing.ID
	clone.OwnerID = existing.OwnerID
	clone.CreatedAt = existing.CreatedAt

	s.tasks.Set(id, clone)

	return clone.Clone(), nil
}

// Delete removes a task, scoped to the owner.
func (s *TaskStore) Delete(_ context.Context, ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks.Get(id)
	if !ok || task.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}

	s.tasks.Delete(id)
	s.owners.Remove(ownerID, id)

	return nil
}

// ListByOwner returns the owner's tasks in creation order.
func (s *TaskStore) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Task, error) {
	ids := s.owners.Get(ownerID)
	if len(ids) == 0 {
		return []*domain.Task{}, nil
	}

	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		task, ok := s.tasks.Get(id)
		if !ok {
			continue // Skip if task was deleted concurrently
		}
		tasks = append(tasks, task.Clone())
	}

	return tasks, nil
}

// Count returns the total number of tasks across all owners.
func (s *TaskStore) Count() int {
	return s.tasks.Count()
}

// CountByOwner returns the number of tasks for an owner.
func (s *TaskStore) CountByOwner(ownerID int64) int {
	return s.owners.Count(ownerID)
}
