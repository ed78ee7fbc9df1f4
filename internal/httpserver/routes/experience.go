package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerExperience) }

func registerExperience(r chi.Router, d deps.Deps) {
	r.Route("/api/experience", func(r chi.Router) {
		r.Get("/", handlers.ListExperience(d))
		r.Post("/", handlers.CreateExperience(d))
		r.Put("/{id}", handlers.UpdateExperience(d))
		r.Delete("/{id}", handlers.DeleteExperience(d))
	})
}
