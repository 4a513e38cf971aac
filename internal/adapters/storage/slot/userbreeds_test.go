package slot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-scheduler/internal/domain/breeds"
)

type rawFake struct {
	value  []byte
	getErr error
	putErr error
}

func (r *rawFake) Get(ctx context.Context) ([]byte, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.value, nil
}

func (r *rawFake) Put(ctx context.Context, value []byte) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.value = append([]byte(nil), value...)
	return nil
}

func TestUserBreeds_RoundTrip(t *testing.T) {
	raw := &rawFake{}
	s := NewUserBreeds(raw)

	url := "data:image/png;base64,AAAA"
	in := []breeds.Record{{
		ID:          "user-1700000000000",
		Name:        "Mutt",
		Temperament: "Friendly",
		LifeSpan:    "12 years",
		Image:       breeds.ImageRef{URL: &url},
		Origin:      breeds.OriginUser,
	}}
	require.NoError(t, s.WriteAll(context.Background(), in))
	assert.JSONEq(t,
		`[{"id":"user-1700000000000","name":"Mutt","temperament":"Friendly","life_span":"12 years","image":{"url":"data:image/png;base64,AAAA"}}]`,
		string(raw.value))

	out, err := s.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUserBreeds_EmptySlot(t *testing.T) {
	s := NewUserBreeds(&rawFake{})

	out, err := s.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUserBreeds_WriteEmptyIsArray(t *testing.T) {
	raw := &rawFake{}
	require.NoError(t, NewUserBreeds(raw).WriteAll(context.Background(), nil))
	assert.Equal(t, "[]", string(raw.value))
}

func TestUserBreeds_PropagatesStorageErrors(t *testing.T) {
	boom := errors.New("disk gone")
	s := NewUserBreeds(&rawFake{getErr: boom, putErr: boom})

	_, err := s.ReadAll(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.WriteAll(context.Background(), nil), boom)
}
