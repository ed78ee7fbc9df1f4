package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerProjects) }

func registerProjects(r chi.Router, d deps.Deps) {
	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", handlers.ListProjects(d))
		r.Post("/", handlers.CreateProject(d))
		r.Put("/{id}", handlers.UpdateProject(d))
		r.Delete("/{id}", handlers.DeleteProject(d))
	})
}
