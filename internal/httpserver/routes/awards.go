package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerAwards) }

func registerAwards(r chi.Router, d deps.Deps) {
	r.Route("/api/awards", func(r chi.Router) {
		r.Get("/", handlers.ListAwards(d))
		r.Post("/", handlers.CreateAward(d))
		r.Put("/{id}", handlers.UpdateAward(d))
		r.Delete("/{id}", handlers.DeleteAward(d))
	})
}
