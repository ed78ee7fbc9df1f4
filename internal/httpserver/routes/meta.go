package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerMeta) }

func registerMeta(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Root(d))
	r.Get("/health", handlers.Health(d))
}
