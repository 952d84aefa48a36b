package service

import (
	"context"
	"strings"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
)

// TaskRepository defines the storage interface for task operations.
//
// All lookups are scoped to an owner; a task owned by someone else is
// reported as not found.
type TaskRepository interface {
	// Create assigns an ID and stores the task.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Get retrieves a task by ID, scoped to the owner.
	Get(ctx context.Context, ownerID, id int64) (*domain.Task, error)

	// Update applies mutate to the stored task atomically and persists
	// the result. An error from mutate aborts the update.
	Update(ctx context.Context, ownerID, id int64, mutate func(*domain.Task) error) (*domain.Task, error)

	// Delete removes a task, scoped to the owner.
	Delete(ctx context.Context, ownerID, id int64) error

	// ListByOwner returns the owner's tasks in creation order.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)
}

// TaskService handles owner-scoped task CRUD.
type TaskService struct {
	repo TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns the owner's tasks in creation order.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get retrieves one of the owner's tasks.
func (s *TaskService) Get(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
	return s.repo.Get(ctx, ownerID, id)
}

// CreateTaskRequest contains parameters for creating a task.
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    string
}

// Create validates the request and stores a new task for the owner.
// An omitted priority defaults to medium.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req *CreateTaskRequest) (*domain.Task, error) {
	if err := domain.ValidateTitle(req.Title); err != nil {
		return nil, err
	}

	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.NewTask(ownerID, req.Title, req.Description, priority))
}

// ReplaceTaskRequest contains the full replacement state of a task.
// Omitted fields take their defaults: empty description, medium
// priority, not completed.
type ReplaceTaskRequest struct {
	Title       string
	Description string
	Priority    string
	Completed   bool
}

// Replace overwrites a task with the request state. Validation runs
// before the lookup, so an invalid body reports 400 even for a missing
// task. CreatedAt is preserved; UpdatedAt is refreshed.
func (s *TaskService) Replace(ctx context.Context, ownerID, id int64, req *ReplaceTaskRequest) (*domain.Task, error) {
	if err := domain.ValidateTitle(req.Title); err != nil {
		return nil, err
	}

	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, ownerID, id, func(task *domain.Task) error {
		task.Title = strings.TrimSpace(req.Title)
		task.Description = strings.TrimSpace(req.Description)
		task.Priority = priority
		task.Completed = req.Completed
		task.Touch()
		return nil
	})
}

// TaskPatch contains the fields of a partial update. Nil fields are
// left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *string
	Completed   *bool
}

// Patch applies a partial update to a task. The lookup runs before
// field validation, so a missing task reports 404 even when the patch
// body is invalid. An empty patch succeeds and still refreshes
// UpdatedAt.
func (s *TaskService) Patch(ctx context.Context, ownerID, id int64, patch *TaskPatch) (*domain.Task, error) {
	return s.repo.Update(ctx, ownerID, id, func(task *domain.Task) error {
		if patch.Title != nil {
			if err := domain.ValidateTitle(*patch.Title); err != nil {
				return err
			}
			task.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			task.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Priority != nil {
			priority, err := domain.ParsePriority(*patch.Priority)
			if err != nil {
				return err
			}
			task.Priority = priority
		}
		if patch.Completed != nil {
			task.Completed = *patch.Completed
		}
		task.Touch()
		return nil
	})
}

// Delete removes one of the owner's tasks.
func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.repo.Delete(ctx, ownerID, id)
}
