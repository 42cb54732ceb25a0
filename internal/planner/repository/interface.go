package repository

import (
	"context"

	"dayplanner/internal/model"
)

// TaskRepository is the interface for per-date task list storage. Lists are
// replaced whole; there is no partial patch primitive.
type TaskRepository interface {
	GetTasks(ctx context.Context, dateID string) ([]model.Task, error)
	ReplaceTasks(ctx context.Context, dateID string, tasks []model.Task) error
}
