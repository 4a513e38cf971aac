package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-scheduler/internal/domain/schedule"
)

type taskRepo struct {
	mu    sync.RWMutex
	items []schedule.Task
}

func NewTaskRepo(seed ...schedule.Task) schedule.Repository {
	return &taskRepo{
		items: append([]schedule.Task(nil), seed...),
	}
}

func (r *taskRepo) Create(ctx context.Context, t schedule.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("task id required")
	}
	r.items = append(r.items, t)
	return nil
}

func (r *taskRepo) List(ctx context.Context) ([]schedule.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Task, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.items {
		if t.ID == id {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
