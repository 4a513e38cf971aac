package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-scheduler/internal/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, view *web.Renderer) {
	// Página
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", petsPageHandler(svc, view))
		pr.Post("/", createPetFormHandler(svc, view))
		pr.Post("/{petID}/remove", removePetFormHandler(svc))
	})

	// JSON
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Age  *int   `json:"age"`
}

// petResponse es una mascota devuelta por la API.
type petResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /api/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary Agregar mascota
// @Description name, type y age son obligatorios.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{Name: req.Name, Type: req.Type, Age: req.Age})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Quitar mascota
// @Description Idempotente: un id inexistente también devuelve 204.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Router /api/pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "petID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func petsPageHandler(svc *Service, view *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPetsPage(w, r, svc, view, http.StatusOK, "")
	}
}

func createPetFormHandler(svc *Service, view *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderPetsPage(w, r, svc, view, http.StatusBadRequest, "invalid form")
			return
		}

		in := CreateInput{
			Name: r.PostFormValue("name"),
			Type: r.PostFormValue("type"),
		}
		if raw := strings.TrimSpace(r.PostFormValue("age")); raw != "" {
			if age, err := strconv.Atoi(raw); err == nil {
				in.Age = &age
			}
		}

		if _, err := svc.Create(r.Context(), in); err != nil {
			renderPetsPage(w, r, svc, view, http.StatusBadRequest, "Name, type and a valid age are required.")
			return
		}
		http.Redirect(w, r, "/pets", http.StatusSeeOther)
	}
}

func removePetFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "petID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/pets", http.StatusSeeOther)
	}
}

func renderPetsPage(w http.ResponseWriter, r *http.Request, svc *Service, view *web.Renderer, status int, flash string) {
	items, err := svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	view.Render(w, status, web.PagePets, web.Page{Title: "My Pets", Flash: flash, Data: items})
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Age:       p.Age,
		CreatedAt: p.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
