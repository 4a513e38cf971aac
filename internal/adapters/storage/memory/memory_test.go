package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-scheduler/internal/domain/pets"
	"pet-care-scheduler/internal/domain/schedule"
)

func TestPetRepo_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo(pets.DefaultPets(time.Now())...)

	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "x", Name: "Rex", Type: "Dog", Age: 4}))
	require.Error(t, repo.Create(ctx, pets.Pet{ID: "x"}), "duplicate id")
	require.Error(t, repo.Create(ctx, pets.Pet{ID: " "}), "blank id")

	require.NoError(t, repo.Delete(ctx, "2"))
	require.NoError(t, repo.Delete(ctx, "missing"))

	items, err := repo.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, p := range items {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Buddy", "Fluffy", "Rex"}, names)
}

func TestTaskRepo_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepo(schedule.DefaultTasks(time.Now())...)

	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Feed Whiskers", items[0].Title)

	// List devuelve copia
	items[0].Title = "changed"
	again, _ := repo.List(ctx)
	assert.Equal(t, "Feed Whiskers", again[0].Title)
}

func TestSlot_GetPut(t *testing.T) {
	ctx := context.Background()

	empty := NewSlot("")
	v, err := empty.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)

	s := NewSlot(`[{"id":"user-1","name":"Mutt"}]`)
	v, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"user-1","name":"Mutt"}]`, string(v))

	require.NoError(t, s.Put(ctx, []byte("[]")))
	v, _ = s.Get(ctx)
	assert.Equal(t, "[]", string(v))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Get(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}
