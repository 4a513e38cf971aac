package memory

import (
	"context"
	"sync"
)

// Slot es un slot en memoria (tests y STORE_DRIVER=memory). No sobrevive reinicios.
type Slot struct {
	mu    sync.RWMutex
	value []byte
}

// NewSlot arranca con el contenido dado; "" es un slot vacío.
func NewSlot(initial string) *Slot {
	s := &Slot{}
	if initial != "" {
		s.value = []byte(initial)
	}
	return s
}

func (s *Slot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.value == nil {
		return nil, nil
	}
	return append([]byte(nil), s.value...), nil
}

func (s *Slot) Put(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = append([]byte(nil), value...)
	return nil
}
