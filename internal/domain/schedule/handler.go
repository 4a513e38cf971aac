package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-care-scheduler/internal/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, view *web.Renderer) {
	r.Route("/schedule", func(sr chi.Router) {
		sr.Get("/", schedulePageHandler(svc, view))
		sr.Post("/", createTaskFormHandler(svc, view))
		sr.Post("/{taskID}/remove", removeTaskFormHandler(svc))
	})

	r.Route("/api/tasks", func(sr chi.Router) {
		sr.Get("/", listTasksHandler(svc))
		sr.Post("/", createTaskHandler(svc))
		sr.Delete("/{taskID}", deleteTaskHandler(svc))
	})
}

type createTaskRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:MM o H:MM AM/PM
}

type taskResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// listTasksHandler godoc
// @Summary Listar tareas
// @Tags schedule
// @Produce json
// @Success 200 {array} taskResponse
// @Router /api/tasks [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]taskResponse, 0, len(items))
		for _, t := range items {
			out = append(out, taskResponse{ID: t.ID, Title: t.Title, Date: t.Date, Time: t.Time})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createTaskHandler godoc
// @Summary Agendar tarea
// @Tags schedule
// @Accept json
// @Produce json
// @Param payload body createTaskRequest true "Tarea"
// @Success 201 {object} taskResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /api/tasks [post]
func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{Title: req.Title, Date: req.Date, Time: req.Time})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, taskResponse{ID: t.ID, Title: t.Title, Date: t.Date, Time: t.Time})
	}
}

// deleteTaskHandler godoc
// @Summary Quitar tarea
// @Tags schedule
// @Param taskID path string true "ID de la tarea"
// @Success 204
// @Router /api/tasks/{taskID} [delete]
func deleteTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "taskID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func schedulePageHandler(svc *Service, view *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderSchedulePage(w, r, svc, view, http.StatusOK, "")
	}
}

func createTaskFormHandler(svc *Service, view *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderSchedulePage(w, r, svc, view, http.StatusBadRequest, "invalid form")
			return
		}

		_, err := svc.Create(r.Context(), CreateInput{
			Title: r.PostFormValue("task"),
			Date:  r.PostFormValue("date"),
			Time:  r.PostFormValue("time"),
		})
		if err != nil {
			msg := "internal error"
			if errors.Is(err, ErrInvalidInput) {
				msg = strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
			}
			renderSchedulePage(w, r, svc, view, http.StatusBadRequest, msg)
			return
		}
		http.Redirect(w, r, "/schedule", http.StatusSeeOther)
	}
}

func removeTaskFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "taskID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/schedule", http.StatusSeeOther)
	}
}

func renderSchedulePage(w http.ResponseWriter, r *http.Request, svc *Service, view *web.Renderer, status int, flash string) {
	items, err := svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	view.Render(w, status, web.PageSchedule, web.Page{Title: "Pet Care Schedule", Flash: flash, Data: items})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
