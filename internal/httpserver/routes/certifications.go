package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
)

func init() { Register(registerCertifications) }

func registerCertifications(r chi.Router, d deps.Deps) {
	r.Route("/api/certifications", func(r chi.Router) {
		r.Get("/", handlers.ListCertifications(d))
		r.Post("/", handlers.CreateCertification(d))
		r.Put("/{id}", handlers.UpdateCertification(d))
		r.Delete("/{id}", handlers.DeleteCertification(d))
	})
}
