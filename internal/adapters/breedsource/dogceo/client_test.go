package dogceo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/breed/akita/images/random":
			_, _ = w.Write([]byte(`{"message":"https://images.dog.ceo/breeds/akita/512px-Ainu-Dog.jpg","status":"success"}`))
		case "/api/breed/weird/images/random":
			_, _ = w.Write([]byte(`{"message":"not a url","status":"success"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":"error","message":"Breed not found (master breed does not exist)","code":404}`))
		}
	}))
}

func TestRandomImage_Success(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	u, err := c.RandomImage(context.Background(), " Akita ")
	require.NoError(t, err)
	assert.Equal(t, "https://images.dog.ceo/breeds/akita/512px-Ainu-Dog.jpg", u)
}

func TestRandomImage_UnknownBreedIsError(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	u, err := c.RandomImage(context.Background(), "affenpinscher")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDogCEOUpstream))
	assert.Empty(t, u)
}

func TestRandomImage_NonURLMessageIsError(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = c.RandomImage(context.Background(), "weird")
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestRandomImage_EmptySlug(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = c.RandomImage(context.Background(), "  ")
	require.Error(t, err)
}
