package usecase

import (
	"context"

	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task"
	"mindgarden-backend/internal/task/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListTasks returns the caller's stored tasks, newest first.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input task.ListTasksInput) ([]model.Task, error) {
	if uc.repo == nil {
		return nil, task.ErrStorageDisabled
	}

	limit := input.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	tasks, err := uc.repo.ListTasks(ctx, sc, repository.ListTasksOptions{
		Tag:    input.Tag,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
