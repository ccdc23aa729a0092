package tasks

import (
	"context"
	"sync"

	"github.com/avasquez/taskkeeper/internal/common"
)

// InMemoryRepository keeps tasks in an ordered, process-lifetime slice.
// Ids come from a single counter shared across all owners; owner scoping in
// List and Delete means a caller can never observe another owner's ids, so
// the global sequence is not a leak.
type InMemoryRepository struct {
	mu     sync.Mutex
	tasks  []*Task
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// List returns the owner's tasks in insertion order. The result is a
// snapshot slice; an owner with no tasks gets an empty, non-nil slice.
func (r *InMemoryRepository) List(ctx context.Context, ownerID int64) ([]*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Task, 0)
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			result = append(result, task)
		}
	}

	return result, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = r.nextID
	r.tasks = append(r.tasks, task)

	return task, nil
}

// Delete removes the first task matching both taskID and ownerID. A task
// owned by someone else is reported as ErrorNotFound, indistinguishable from
// a task that does not exist.
func (r *InMemoryRepository) Delete(ctx context.Context, ownerID int64, taskID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, task := range r.tasks {
		if task.ID == taskID && task.OwnerID == ownerID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}

	return common.ErrorNotFound
}
