package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerPatents) }

func registerPatents(r chi.Router, d deps.Deps) {
	r.Route("/api/patents", func(r chi.Router) {
		r.Get("/", handlers.ListPatents(d))
		r.Post("/", handlers.CreatePatent(d))
		r.Put("/{id}", handlers.UpdatePatent(d))
		r.Delete("/{id}", handlers.DeletePatent(d))
	})
}
