// Package bolt guarda el slot local en un archivo bbolt (driver por defecto).
package bolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"
)

var slotsBucket = []byte("slots")

type Store struct {
	db *bbolt.DB
}

// Open crea el directorio si hace falta y abre (o crea) el archivo.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("bolt: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("bolt: mkdir: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(slotsBucket)
		return e
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Slot devuelve el slot de una clave (ej. "userBreeds").
func (s *Store) Slot(key string) *Slot {
	return &Slot{db: s.db, key: []byte(key)}
}

type Slot struct {
	db  *bbolt.DB
	key []byte
}

func (s *Slot) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(slotsBucket)
		if b == nil {
			return nil
		}
		// el valor sólo es válido dentro de la tx
		if v := b.Get(s.key); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Slot) Put(ctx context.Context, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(slotsBucket)
		if err != nil {
			return err
		}
		return b.Put(s.key, value)
	})
}
