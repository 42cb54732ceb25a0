// Package memory is the in-process TaskRepository backing a single planner
// instance. Lists are cloned on the way in and out so callers can never alias
// stored state.
package memory

import (
	"context"
	"sync"

	"dayplanner/internal/model"
	"dayplanner/internal/planner/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string][]model.Task // keyed by date ID
}

// New creates an empty in-memory task repository.
func New() repository.TaskRepository {
	return &implRepository{
		tasks: make(map[string][]model.Task),
	}
}

func (r *implRepository) GetTasks(ctx context.Context, dateID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return model.CloneTasks(r.tasks[dateID]), nil
}

func (r *implRepository) ReplaceTasks(ctx context.Context, dateID string, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(tasks) == 0 {
		delete(r.tasks, dateID)
		return nil
	}
	r.tasks[dateID] = model.CloneTasks(tasks)
	return nil
}
