package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON_DecodesAndSendsHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/breeds", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Akita"}`))
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL + "/", Timeout: time.Second, Headers: map[string]string{"x-api-key": "secret", "": "x"}})
	require.NoError(t, err)

	var out struct {
		Name string `json:"name"`
	}
	err = c.GetJSON(context.Background(), "v1/breeds", url.Values{"limit": {"20"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Akita", out.Name)
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c, err := New(Options{})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, ts.URL, nil, nil, nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "nope", httpErr.Body)
}

func TestDoJSON_RelativePathWithoutBaseURL(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	require.Error(t, err)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "::not a url"})
	require.Error(t, err)
}

func TestDoJSON_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL})
	require.NoError(t, err)

	var out map[string]any
	err = c.GetJSON(context.Background(), "/", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal json")
}
