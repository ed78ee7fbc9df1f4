package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerProfile) }

func registerProfile(r chi.Router, d deps.Deps) {
	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/", handlers.GetProfile(d))
		r.Put("/", handlers.UpdateProfile(d))
	})
}
