package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/logger"
	"github.com/likith1908/portfolio-api/internal/store"
)

// Singleton resources are read whole and written by upsert-replace.
// notFound and failMsg carry the resource-specific detail strings.

func getSingleton[T any](d deps.Deps, notFound string, fn func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := fn(r.Context())
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeDetail(w, http.StatusNotFound, notFound)
		case err != nil:
			d.Logger.Error("singleton read failed",
				logger.String("detail", notFound),
				logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, internalErrorDetail)
		default:
			writeJSON(w, http.StatusOK, rec)
		}
	}
}

func replaceSingleton[P domain.Patch](d deps.Deps, okMsg, failMsg string, fn func(context.Context, map[string]any) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch P
		if err := decodeJSON(r, &patch); err != nil && !errors.Is(err, errEmptyBody) {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		fields := patch.Fields()
		if len(fields) == 0 {
			writeDetail(w, http.StatusBadRequest, "No data provided for update")
			return
		}

		if err := fn(r.Context(), fields); err != nil {
			d.Logger.Error("singleton replace failed",
				logger.String("detail", failMsg),
				logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, failMsg)
			return
		}
		writeAck(w, okMsg)
	}
}
