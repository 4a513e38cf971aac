// Package slot adapta un slot clave→bytes (bolt, sqlite, postgres, memoria)
// al puerto breeds.UserStore. El contenido es el arreglo JSON completo.
package slot

import (
	"context"
	"fmt"

	"pet-care-scheduler/internal/domain/breeds"
)

const DefaultKey = "userBreeds"

// Raw es un único valor persistido. Get devuelve (nil, nil) si nunca se escribió.
type Raw interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, value []byte) error
}

type UserBreeds struct {
	raw Raw
}

func NewUserBreeds(raw Raw) *UserBreeds {
	return &UserBreeds{raw: raw}
}

var _ breeds.UserStore = (*UserBreeds)(nil)

// ReadAll sólo falla si falla el storage: contenido roto => lista vacía.
func (s *UserBreeds) ReadAll(ctx context.Context) ([]breeds.Record, error) {
	b, err := s.raw.Get(ctx)
	if err != nil {
		return nil, err
	}
	return breeds.DecodeUserRecords(b), nil
}

func (s *UserBreeds) WriteAll(ctx context.Context, records []breeds.Record) error {
	b, err := breeds.EncodeUserRecords(records)
	if err != nil {
		return fmt.Errorf("encode user breeds: %w", err)
	}
	return s.raw.Put(ctx, b)
}
