package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/httpserver/handlers"
	"github.com/likith1908/portfolio-api/internal/httpserver/mw"
)

func init() { Register(registerContact) }

func registerContact(r chi.Router, d deps.Deps) {
	r.Route("/api/contact", func(r chi.Router) {
		r.With(mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.ContactBurst,
			RefillPerIPPerMin: d.ContactRefillPerMin,
			TrustProxy:        d.TrustProxy,
		})).Post("/", handlers.SubmitContact(d))

		r.With(
			mw.RequireToken(d.AdminToken),
			mw.AllowOnlyCIDRS(d.AdminCIDRs, d.TrustProxy, d.Logger),
		).Get("/submissions", handlers.ListContactSubmissions(d))
	})
}
