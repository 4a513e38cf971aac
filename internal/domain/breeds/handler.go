package breeds

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"pet-care-scheduler/internal/web"

	"github.com/go-chi/chi/v5"
)

// DefaultMaxUploadBytes limita el tamaño de la imagen subida por formulario.
const DefaultMaxUploadBytes int64 = 5 << 20

var (
	errImageUnreadable = errors.New("image could not be read")
	ErrNotAnImage      = errors.New("file is not an image")
)

type handlers struct {
	cat       *Catalog
	view      *web.Renderer
	maxUpload int64
}

func RegisterRoutes(r chi.Router, cat *Catalog, view *web.Renderer, maxUploadBytes int64) {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	h := &handlers{cat: cat, view: view, maxUpload: maxUploadBytes}

	// Página
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", h.page)
		br.Post("/", h.addForm)
		br.Post("/reload", h.reloadForm)
		br.Post("/{breedID}/remove", h.removeForm)
	})

	// JSON
	r.Route("/api/breeds", func(br chi.Router) {
		br.Get("/", h.listBreeds)
		br.Post("/", h.createBreed)
		br.Post("/load", h.loadBreeds)
		br.Delete("/{breedID}", h.deleteBreed)
	})
}

// -------------------------
// JSON
// -------------------------

type createBreedRequest struct {
	Name        string  `json:"name"`
	Temperament string  `json:"temperament"`
	LifeSpan    string  `json:"life_span"`
	Image       *string `json:"image"` // URL o data URI
}

type breedResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Temperament string   `json:"temperament"`
	LifeSpan    string   `json:"life_span"`
	Image       ImageRef `json:"image"`
	AddedByUser bool     `json:"added_by_user"`
}

type catalogResponse struct {
	State  State           `json:"state"`
	Breeds []breedResponse `json:"breeds"`
	Error  string          `json:"error,omitempty"`
}

// listBreeds godoc
// @Summary Listar razas
// @Description Si el catálogo nunca se cargó, lo carga antes de responder.
// @Tags breeds
// @Produce json
// @Success 200 {object} catalogResponse
// @Router /api/breeds [get]
func (h *handlers) listBreeds(w http.ResponseWriter, r *http.Request) {
	v := h.cat.EnsureLoaded(detach(r))
	writeJSON(w, http.StatusOK, toCatalogResponse(v))
}

// loadBreeds godoc
// @Summary Recargar razas
// @Description Vuelve a pedir la fuente primaria, las imágenes y el slot local.
// @Tags breeds
// @Produce json
// @Success 200 {object} catalogResponse
// @Failure 502 {object} catalogResponse
// @Failure 409 {string} string "superseded"
// @Router /api/breeds/load [post]
func (h *handlers) loadBreeds(w http.ResponseWriter, r *http.Request) {
	_, err := h.cat.Load(detach(r))
	if err != nil {
		if errors.Is(err, ErrLoadSuperseded) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		writeJSON(w, statusFor(err), toCatalogResponse(h.cat.Snapshot()))
		return
	}
	writeJSON(w, http.StatusOK, toCatalogResponse(h.cat.Snapshot()))
}

// createBreed godoc
// @Summary Agregar raza propia
// @Tags breeds
// @Accept json
// @Produce json
// @Param payload body createBreedRequest true "Raza"
// @Success 201 {object} breedResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 409 {string} string "catalog not ready"
// @Failure 500 {string} string "storage error"
// @Router /api/breeds [post]
func (h *handlers) createBreed(w http.ResponseWriter, r *http.Request) {
	var req createBreedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	rec, err := h.cat.Add(r.Context(), Draft{
		Name:        req.Name,
		Temperament: req.Temperament,
		LifeSpan:    req.LifeSpan,
		Image:       req.Image,
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusCreated, toBreedResponse(rec))
}

// deleteBreed godoc
// @Summary Quitar raza
// @Description Las razas remotas sólo se ocultan hasta la próxima carga. Id desconocido => 204.
// @Tags breeds
// @Param breedID path string true "ID de la raza"
// @Success 204
// @Failure 409 {string} string "catalog not ready"
// @Failure 500 {string} string "storage error"
// @Router /api/breeds/{breedID} [delete]
func (h *handlers) deleteBreed(w http.ResponseWriter, r *http.Request) {
	if err := h.cat.Remove(r.Context(), chi.URLParam(r, "breedID")); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -------------------------
// Página
// -------------------------

type breedCard struct {
	ID          string
	Name        string
	Temperament string
	LifeSpan    string
	ImageURL    template.URL
	Placeholder string
	AddedByUser bool
}

type breedsPage struct {
	State string
	Error string
	Cards []breedCard
}

func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	v := h.cat.EnsureLoaded(detach(r))
	h.render(w, http.StatusOK, v, "")
}

func (h *handlers) reloadForm(w http.ResponseWriter, r *http.Request) {
	// el resultado (Ready o Failed) lo muestra la página
	_, _ = h.cat.Load(detach(r))
	http.Redirect(w, r, "/breeds", http.StatusSeeOther)
}

func (h *handlers) addForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		h.render(w, http.StatusBadRequest, h.cat.Snapshot(), "The form could not be read (is the image too large?).")
		return
	}

	// sin nombre no se agrega nada
	if strings.TrimSpace(r.FormValue("name")) == "" {
		http.Redirect(w, r, "/breeds", http.StatusSeeOther)
		return
	}

	image, err := readImageUpload(r)
	if err != nil {
		h.render(w, http.StatusBadRequest, h.cat.Snapshot(), "Upload failed: "+err.Error()+".")
		return
	}

	_, err = h.cat.Add(r.Context(), Draft{
		Name:        r.FormValue("name"),
		Temperament: r.FormValue("temperament"),
		LifeSpan:    r.FormValue("life_span"),
		Image:       image,
	})
	if err != nil {
		h.render(w, statusFor(err), h.cat.Snapshot(), flashFor(err))
		return
	}
	http.Redirect(w, r, "/breeds", http.StatusSeeOther)
}

func (h *handlers) removeForm(w http.ResponseWriter, r *http.Request) {
	if err := h.cat.Remove(r.Context(), chi.URLParam(r, "breedID")); err != nil {
		h.render(w, statusFor(err), h.cat.Snapshot(), flashFor(err))
		return
	}
	http.Redirect(w, r, "/breeds", http.StatusSeeOther)
}

func (h *handlers) render(w http.ResponseWriter, status int, v View, flash string) {
	data := breedsPage{
		State: string(v.State),
		Error: v.Error,
		Cards: make([]breedCard, 0, len(v.Breeds)),
	}
	for _, rec := range v.Breeds {
		data.Cards = append(data.Cards, toCard(rec))
	}
	h.view.Render(w, status, web.PageBreeds, web.Page{Title: "Dog Breeds", Flash: flash, Data: data})
}

func toCard(rec Record) breedCard {
	placeholder := PlaceholderURL(rec.ID)
	return breedCard{
		ID:          rec.ID,
		Name:        rec.Name,
		Temperament: rec.Temperament,
		LifeSpan:    rec.LifeSpan,
		ImageURL:    displayableImage(rec.ImageURL(), placeholder),
		Placeholder: placeholder,
		AddedByUser: rec.AddedByUser(),
	}
}

// displayableImage marca como segura sólo una URL http(s) o un data URI de imagen;
// cualquier otra cosa (o nada) muestra el placeholder.
func displayableImage(u, placeholder string) template.URL {
	lower := strings.ToLower(strings.TrimSpace(u))
	switch {
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "data:image/"):
		return template.URL(u)
	default:
		return template.URL(placeholder)
	}
}

// readImageUpload devuelve el archivo "image" como data URI, o nil si no vino.
func readImageUpload(r *http.Request) (*string, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errImageUnreadable
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errImageUnreadable
	}
	if len(data) == 0 {
		return nil, nil
	}

	uri, err := ImageDataURI(data)
	if err != nil {
		return nil, err
	}
	return &uri, nil
}

// ImageDataURI codifica una imagen como data:<mime>;base64,... para guardarla inline.
func ImageDataURI(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotAnImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// -------------------------
// helpers
// -------------------------

func statusFor(err error) int {
	var rfe *RemoteFetchError
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotReady), errors.Is(err, ErrLoadSuperseded):
		return http.StatusConflict
	case errors.As(err, &rfe):
		return http.StatusBadGateway
	default: // StorageReadError / StorageWriteError
		return http.StatusInternalServerError
	}
}

func flashFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "Breed name is required."
	case errors.Is(err, ErrNotReady):
		return "Breeds are still loading, try again in a moment."
	default:
		return "Your breeds could not be saved: " + err.Error()
	}
}

// detach: la carga sigue aunque el navegador corte la request.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func toBreedResponse(rec Record) breedResponse {
	return breedResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		Temperament: rec.Temperament,
		LifeSpan:    rec.LifeSpan,
		Image:       rec.Image,
		AddedByUser: rec.AddedByUser(),
	}
}

func toCatalogResponse(v View) catalogResponse {
	out := catalogResponse{
		State:  v.State,
		Error:  v.Error,
		Breeds: make([]breedResponse, 0, len(v.Breeds)),
	}
	for _, rec := range v.Breeds {
		out.Breeds = append(out.Breeds, toBreedResponse(rec))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
