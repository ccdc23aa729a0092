// Package tasks implements the task store: per-owner task records behind a
// repository interface so persistence backends are swappable.
package tasks

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]*Task, error) {

	list, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %v", err)
	}

	return list, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, text string) (*Task, error) {

	task := &Task{
		Text:    text,
		OwnerID: ownerID,
	}

	task, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %v", err)
	}

	return task, nil
}

// Delete removes the owner's task. Repository errors (including not-found,
// which also covers tasks owned by other users) pass through unchanged so
// callers can match them with errors.Is.
func (s *Service) Delete(ctx context.Context, ownerID int64, taskID int64) error {
	return s.repo.Delete(ctx, ownerID, taskID)
}
