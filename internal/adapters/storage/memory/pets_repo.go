package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-scheduler/internal/domain/pets"
)

// petRepo conserva el orden de alta (es el orden en pantalla).
type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

func NewPetRepo(seed ...pets.Pet) pets.Repository {
	return &petRepo{
		items: append([]pets.Pet(nil), seed...),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	for _, existing := range r.items {
		if existing.ID == p.ID {
			return errors.New("pet already exists")
		}
	}
	r.items = append(r.items, p)
	return nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]pets.Pet, 0, len(r.items))
	for _, p := range r.items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.items = out
	return nil
}
