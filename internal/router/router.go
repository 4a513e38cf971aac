package router

import (
	"net/http"
	"time"

	mem "pet-care-scheduler/internal/adapters/storage/memory"
	_ "pet-care-scheduler/internal/docs" // registra la doc de swagger
	"pet-care-scheduler/internal/domain/breeds"
	"pet-care-scheduler/internal/domain/pets"
	"pet-care-scheduler/internal/domain/schedule"
	"pet-care-scheduler/internal/middleware"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Catálogo de razas ya armado (clientes remotos + slot local).
	Catalog *breeds.Catalog

	// Opcionales: si no vienen, listas en memoria con los datos iniciales.
	PetRepo  pets.Repository
	TaskRepo schedule.Repository

	View           *web.Renderer // nil => MustRenderer
	MaxUploadBytes int64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	view := opts.View
	if view == nil {
		view = web.MustRenderer()
	}

	petRepo := opts.PetRepo
	if petRepo == nil {
		petRepo = mem.NewPetRepo(pets.DefaultPets(time.Now())...)
	}
	taskRepo := opts.TaskRepo
	if taskRepo == nil {
		taskRepo = mem.NewTaskRepo(schedule.DefaultTasks(time.Now())...)
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	scheduleSvc := schedule.NewService(taskRepo)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		view.Render(w, http.StatusOK, web.PageHome, web.Page{Title: "Home"})
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, view)
	schedule.RegisterRoutes(r, scheduleSvc, view)
	if opts.Catalog != nil {
		breeds.RegisterRoutes(r, opts.Catalog, view, opts.MaxUploadBytes)
	} else {
		log.Warn("no breed catalog configured, /breeds disabled", nil)
	}

	return r
}
