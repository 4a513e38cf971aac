package pets

import "context"

// Repository guarda la lista en orden de alta.
// Delete de un id inexistente no es error.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	List(ctx context.Context) ([]Pet, error)
	Delete(ctx context.Context, id string) error
}
