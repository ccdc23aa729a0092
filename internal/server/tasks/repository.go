package tasks

import (
	"context"
)

type Repository interface {
	List(ctx context.Context, ownerID int64) ([]*Task, error)
	Create(ctx context.Context, task *Task) (*Task, error)
	Delete(ctx context.Context, ownerID int64, taskID int64) error
}
