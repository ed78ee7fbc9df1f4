package handlers

import (
	"net/http"
	"time"

	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/logger"
)

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func Root(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rootResponse{
			Message: "Portfolio API is running!",
			Version: d.Version,
		})
	}
}

func Health(d deps.Deps) http.HandlerFunc {
	start := d.StartTime
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		if err := d.Store.Ping(r.Context()); err != nil {
			d.Logger.Error("health check store ping failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:        "unhealthy",
				Message:       "Portfolio API cannot reach its database",
				UptimeSeconds: time.Since(start).Seconds(),
			})
			return
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:        "healthy",
			Message:       "Portfolio API is running",
			UptimeSeconds: time.Since(start).Seconds(),
		})
	}
}
