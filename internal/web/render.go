// Package web es la capa de vista: templates HTML embebidos para las páginas
// de inicio, mascotas, agenda y razas.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Páginas disponibles.
const (
	PageHome     = "home"
	PagePets     = "pets"
	PageSchedule = "schedule"
	PageBreeds   = "breeds"
)

var pages = []string{PageHome, PagePets, PageSchedule, PageBreeds}

// Page es lo que recibe el layout. Data depende de cada página.
type Page struct {
	Title  string
	Active string
	Flash  string
	Data   any
}

type Renderer struct {
	byPage map[string]*template.Template
}

// NewRenderer parsea layout + cada página una sola vez.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse layout: %w", err)
	}

	r := &Renderer{byPage: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("web: clone layout: %w", err)
		}
		if _, err := t.ParseFS(templatesFS, "templates/"+p+".html"); err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", p, err)
		}
		r.byPage[p] = t
	}
	return r, nil
}

// MustRenderer es para el arranque: un template roto es un bug de build.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render ejecuta en un buffer para no mandar HTML a medias si el template falla.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	t, ok := r.byPage[page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	if data.Active == "" {
		data.Active = page
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
