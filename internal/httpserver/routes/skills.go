package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerSkills) }

func registerSkills(r chi.Router, d deps.Deps) {
	r.Route("/api/skills", func(r chi.Router) {
		r.Get("/", handlers.GetSkills(d))
		r.Put("/", handlers.UpdateSkills(d))
	})
}
