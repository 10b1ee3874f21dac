package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/komachi-dev/komachi/internal/middleware"
	"github.com/komachi-dev/komachi/internal/middleware/metrics"
	"github.com/komachi-dev/komachi/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chi_middleware.RealIP)
	r.Use(chi_middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/boards", h.GetBoards)
		r.Get("/boards/{board}", h.GetBoard)

		// Admin provisioning routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.AdminOnly(deps.Jwt))
			r.Post("/categories", h.CreateCategory)
			r.Post("/boards", h.CreateBoard)
			r.Patch("/boards/{board}", h.SetBoardReadOnly)
			r.Post("/{board}/{thread}/archive", h.ArchiveThread)
		})

		r.Get("/{board}", h.ListThreads)
		r.Post("/{board}", h.CreateThread)
		r.Get("/{board}/{thread}", h.GetThread)
		r.Post("/{board}/{thread}", h.CreatePost)
	})

	return r
}
