package domain

import (
	"strings"
	"time"
)

// Task constraints.
const (
	// MinTitleLength is the minimum task title length after trimming.
	MinTitleLength = 3
)

// Priority is the task priority level.
type Priority string

// Priority levels.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when a write omits the priority field.
const DefaultPriority = PriorityMedium

// ParsePriority parses a priority string. An empty string yields the
// default; anything outside the enum is a validation error.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return DefaultPriority, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	default:
		return "", NewValidationError("Priority must be one of: low, medium, high")
	}
}

// Task represents a single task record owned by a user.
//
// Wire field names follow the public API: the owner is serialized as
// "userId" and timestamps as createdAt/updatedAt.
type Task struct {
	// ID is the unique identifier, assigned from a process-wide monotonic
	// counter independent of the user id space. IDs are never reused,
	// even after deletion.
	ID int64 `json:"id"`

	// OwnerID references the creating user. Immutable after creation.
	OwnerID int64 `json:"userId"`

	// Title is the task title, trimmed at write time.
	Title string `json:"title"`

	// Description is optional free text, trimmed at write time.
	Description string `json:"description"`

	// Priority is the task priority level.
	Priority Priority `json:"priority"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	// CreatedAt is set at creation and never changes.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every successful mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTask creates a Task with trimmed fields and stamped timestamps.
// The ID is assigned by the store at creation. CreatedAt and UpdatedAt
// are identical until the first mutation.
func NewTask(ownerID int64, title, description string, priority Priority) *Task {
	now := time.Now().UTC()
	return &Task{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}

// Touch refreshes the UpdatedAt timestamp.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// ValidateTitle checks the minimum-length constraint on a title.
func ValidateTitle(title string) error {
	if len(strings.TrimSpace(title)) < MinTitleLength {
		return NewValidationError("Title must be at least 3 characters")
	}
	return nil
}
