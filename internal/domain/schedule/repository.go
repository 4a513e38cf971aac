package schedule

import "context"

// Repository guarda las tareas en orden de alta.
type Repository interface {
	Create(ctx context.Context, t Task) error
	List(ctx context.Context) ([]Task, error)
	Delete(ctx context.Context, id string) error
}
