package memory

import (
	"sync"

	"github.com/Nenzy16/task-management-system/pkg/cmap"
)

// TaskList is a concurrent-safe ordered list of task IDs.
//
// Order is insertion order, which is what list endpoints return. A map
// backs membership checks so Remove stays cheap for large lists.
type TaskList struct {
	mu      sync.RWMutex
	ids     []int64
	members map[int64]struct{}
}

// NewTaskList creates an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{
		members: make(map[int64]struct{}),
	}
}

// Add appends a task ID. Duplicates are ignored.
func (l *TaskList) Add(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.members[id]; ok {
		return
	}
	l.ids = append(l.ids, id)
	l.members[id] = struct{}{}
}

// Remove removes a task ID, preserving the order of the rest.
func (l *TaskList) Remove(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.members[id]; !ok {
		return
	}
	delete(l.members, id)
	for i, v := range l.ids {
		if v == id {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			break
		}
	}
}

// Contains checks if a task ID is in the list.
func (l *TaskList) Contains(id int64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.members[id]
	return ok
}

// Len returns the number of IDs in the list.
func (l *TaskList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

// Items returns a copy of the IDs in insertion order.
func (l *TaskList) Items() []int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]int64, len(l.ids))
	copy(items, l.ids)
	return items
}

// OwnerIndex provides secondary indexing for tasks by owning user.
//
// It maintains a mapping from user ID to an ordered list of task IDs,
// enabling efficient owner-scoped listing in creation order.
type OwnerIndex struct {
	index *cmap.Map[int64, *TaskList]
}

// NewOwnerIndex creates a new owner index.
func NewOwnerIndex() *OwnerIndex {
	return &OwnerIndex{
		index: cmap.New[int64, *TaskList](),
	}
}

// Add adds a task to the owner's list.
func (i *OwnerIndex) Add(ownerID, taskID int64) {
	list, _ := i.index.GetOrSet(ownerID, NewTaskList())
	list.Add(taskID)
}

// Remove removes a task from the owner's list.
func (i *OwnerIndex) Remove(ownerID, taskID int64) {
	list, ok := i.index.Get(ownerID)
	if !ok {
		return
	}

	list.Remove(taskID)

	// Clean up empty lists
	if list.Len() == 0 {
		i.index.Delete(ownerID)
	}
}

// Get returns the owner's task IDs in creation order.
func (i *OwnerIndex) Get(ownerID int64) []int64 {
	list, ok := i.index.Get(ownerID)
	if !ok {
		return nil
	}
	return list.Items()
}

// Count returns the number of tasks for an owner.
func (i *OwnerIndex) Count(ownerID int64) int {
	list, ok := i.index.Get(ownerID)
	if !ok {
		return 0
	}
	return list.Len()
}

// Clear removes all tasks for an owner.
func (i *OwnerIndex) Clear(ownerID int64) {
	i.index.Delete(ownerID)
}
