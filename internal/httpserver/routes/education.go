package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerEducation) }

func registerEducation(r chi.Router, d deps.Deps) {
	r.Route("/api/education", func(r chi.Router) {
		r.Get("/", handlers.ListEducation(d))
		r.Post("/", handlers.CreateEducation(d))
		r.Put("/{id}", handlers.UpdateEducation(d))
		r.Delete("/{id}", handlers.DeleteEducation(d))
	})
}
