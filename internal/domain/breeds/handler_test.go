package breeds

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-scheduler/internal/web"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestRouter(c *Catalog) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, c, web.MustRenderer(), 1<<20)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("image", "pic.bin")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandler_Page_LoadsAndRendersCards(t *testing.T) {
	meta := &fakeMeta{breeds: []RemoteBreed{{ID: intPtr(3), Name: "Akita", ImageURL: "https://img/akita.jpg"}}}
	store := newFakeStore(`[{"id":"user-9","name":"Mutt"}]`)
	h := newTestRouter(newTestCatalog(meta, &fakeImages{}, store))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/breeds", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Akita")
	assert.Contains(t, body, `src="https://img/akita.jpg"`)
	assert.Contains(t, body, "Mutt")
	assert.Equal(t, 1, strings.Count(body, "Added by User"))
	// sin imagen => placeholder determinístico por id
	assert.Contains(t, body, "placedog.net/300/200?random=user-9")
	assert.Equal(t, 1, meta.calls)
}

func TestHandler_Page_FailedShowsRetry(t *testing.T) {
	meta := &fakeMeta{err: errors.New("dial tcp: refused")}
	h := newTestRouter(newTestCatalog(meta, &fakeImages{}, newFakeStore("")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/breeds", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dial tcp: refused")
	assert.Contains(t, rec.Body.String(), "Try Again")

	// retry manual
	meta.set([]RemoteBreed{{Name: "Beagle", ImageURL: "https://img/b.jpg"}}, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/breeds/reload", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/breeds", nil))
	assert.Contains(t, rec.Body.String(), "Beagle")
	assert.NotContains(t, rec.Body.String(), "Try Again")
}

func TestHandler_AddForm_EncodesImageAsDataURI(t *testing.T) {
	store := newFakeStore("")
	c := loadedCatalog(t, store)
	h := newTestRouter(c)

	body, ct := multipartBody(t, map[string]string{"name": " Mutt ", "temperament": ""}, pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/breeds", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, store.snapshot(), `"url":"data:image/png;base64,`)
	assert.Contains(t, store.snapshot(), `"temperament":"Not specified"`)
}

func TestHandler_AddForm_EmptyNameIsIgnored(t *testing.T) {
	store := newFakeStore("")
	h := newTestRouter(loadedCatalog(t, store))

	body, ct := multipartBody(t, map[string]string{"name": "   "}, nil)
	req := httptest.NewRequest(http.MethodPost, "/breeds", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 0, store.writes)
}

func TestHandler_AddForm_RejectsNonImage(t *testing.T) {
	store := newFakeStore("")
	h := newTestRouter(loadedCatalog(t, store))

	body, ct := multipartBody(t, map[string]string{"name": "Mutt"}, []byte("just some text"))
	req := httptest.NewRequest(http.MethodPost, "/breeds", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not an image")
	assert.Equal(t, 0, store.writes)
}

func TestHandler_AddForm_StorageFailureIsShown(t *testing.T) {
	store := newFakeStore("")
	c := loadedCatalog(t, store)
	store.writeErr = errors.New("quota exceeded")
	h := newTestRouter(c)

	body, ct := multipartBody(t, map[string]string{"name": "Mutt"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/breeds", body)
	req.Header.Set("Content-Type", ct)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "quota exceeded")
	assert.NotContains(t, rec.Body.String(), "Added by User")
}

func TestHandler_API_CreateBeforeLoadIsConflict(t *testing.T) {
	h := newTestRouter(newTestCatalog(&fakeMeta{}, &fakeImages{}, newFakeStore("")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/breeds", strings.NewReader(`{"name":"Mutt"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_API_CreateAndDelete(t *testing.T) {
	store := newFakeStore("")
	h := newTestRouter(loadedCatalog(t, store))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/breeds", strings.NewReader(`{"name":"Mutt","life_span":"12 years"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":"user-1700000000000","name":"Mutt","temperament":"Not specified","life_span":"12 years","image":{"url":null},"added_by_user":true}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/breeds/user-1700000000000", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "[]", store.snapshot())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/breeds/nope", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_API_CreateRejectsRemoteImageURL(t *testing.T) {
	store := newFakeStore("")
	h := newTestRouter(loadedCatalog(t, store))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/breeds", strings.NewReader(`{"name":"Mutt","image":"https://evil.example/x.svg"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "data:image/")
	assert.Equal(t, 0, store.writes)
}

func TestHandler_API_LoadPrimaryFailureIsBadGateway(t *testing.T) {
	meta := &fakeMeta{err: errors.New("503 from upstream")}
	h := newTestRouter(newTestCatalog(meta, &fakeImages{}, newFakeStore("")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/breeds/load", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"failed"`)
	assert.Contains(t, rec.Body.String(), "503 from upstream")
}

func TestDisplayableImage(t *testing.T) {
	ph := PlaceholderURL("x")
	cases := map[string]string{
		"https://img/a.jpg":          "https://img/a.jpg",
		"data:image/png;base64,AAAA": "data:image/png;base64,AAAA",
		"javascript:alert(1)":        ph,
		"data:text/html,<b>x</b>":    ph,
		"":                           ph,
	}
	for in, want := range cases {
		assert.Equal(t, want, string(displayableImage(in, ph)), in)
	}
}
