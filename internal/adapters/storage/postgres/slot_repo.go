package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// SlotRepo es un slot clave→texto en la tabla slots.
type SlotRepo struct {
	db  *sql.DB
	key string
}

func NewSlotRepo(db *sql.DB, key string) *SlotRepo {
	return &SlotRepo{db: db, key: strings.TrimSpace(key)}
}

func (r *SlotRepo) Get(ctx context.Context) ([]byte, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = $1`, r.key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(v), nil
}

// Put reemplaza el valor completo (last-write-wins).
func (r *SlotRepo) Put(ctx context.Context, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, r.key, string(value))
	return err
}
