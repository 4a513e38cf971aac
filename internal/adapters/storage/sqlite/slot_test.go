package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_UpsertAndRead(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "petcare.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot := NewSlot(db, "userBreeds")

	v, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, slot.Put(ctx, []byte(`[{"id":"user-1","name":"A"}]`)))
	require.NoError(t, slot.Put(ctx, []byte(`[]`)))

	v, err = slot.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM slots`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSlot_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "petcare.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, NewSlot(db, "a").Put(ctx, []byte("1")))
	v, err := NewSlot(db, "b").Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)
}
