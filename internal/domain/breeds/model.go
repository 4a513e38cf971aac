package breeds

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultTemperament = "Not specified"
	DefaultLifeSpan    = "Unknown"

	// DefaultPageSize es cuántas razas pedimos a la fuente primaria.
	DefaultPageSize = 20

	UserIDPrefix   = "user-"
	RemoteIDPrefix = "api-"

	placeholderBase = "https://placedog.net/300/200"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Origin distingue razas traídas de la API de las cargadas por el usuario.
type Origin string

const (
	OriginRemote Origin = "remote"
	OriginUser   Origin = "user"
)

// ImageRef apunta a una imagen mostrable: URL remota o data URI.
// URL nil => la vista muestra placeholder.
type ImageRef struct {
	URL *string `json:"url"`
}

// Record es una raza tal como se muestra en el catálogo.
// Origin no se persiste: todo lo que sale del slot local es OriginUser.
type Record struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Temperament string   `json:"temperament"`
	LifeSpan    string   `json:"life_span"`
	Image       ImageRef `json:"image"`
	Origin      Origin   `json:"-"`
}

// AddedByUser indica si el registro vino del formulario local.
func (r Record) AddedByUser() bool {
	return r.Origin == OriginUser
}

// ImageURL devuelve la URL o "" si no hay imagen.
func (r Record) ImageURL() string {
	if r.Image.URL == nil {
		return ""
	}
	return *r.Image.URL
}

// Draft es lo que llega del formulario, todavía sin id.
type Draft struct {
	Name        string
	Temperament string
	LifeSpan    string
	Image       *string // data URI ya codificado por quien llama
}

// RemoteBreed es una fila de la fuente primaria.
type RemoteBreed struct {
	ID          *int
	Name        string
	Temperament string
	LifeSpan    string
	ImageURL    string
}

// State del catálogo: Loading -> Ready | Failed. Failed vuelve a Loading con retry.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// View es una foto inmutable del catálogo para renderizar.
type View struct {
	State  State    `json:"state"`
	Breeds []Record `json:"breeds"`
	Error  string   `json:"error,omitempty"`
}

// RemoteID: id natural si existe, si no api-<nombre con espacios -> '-'>.
func RemoteID(b RemoteBreed) string {
	if b.ID != nil && *b.ID != 0 {
		return strconv.Itoa(*b.ID)
	}
	return RemoteIDPrefix + whitespaceRun.ReplaceAllString(strings.ToLower(b.Name), "-")
}

// ImageSlug es la primera palabra del nombre en minúsculas ("German Shepherd" -> "german").
func ImageSlug(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// PlaceholderURL es la imagen que la vista usa cuando la remota no carga.
func PlaceholderURL(id string) string {
	return placeholderBase + "?" + url.Values{"random": {id}}.Encode()
}

func normalizeOptional(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func strPtr(s string) *string {
	return &s
}
