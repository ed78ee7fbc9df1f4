package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/logger"
	"github.com/likith1908/portfolio-api/internal/store"
)

// Every collection resource shares the same four handler shapes, so
// they are built from these factories. The label is the capitalized
// resource noun used in acknowledgement and error messages, e.g.
// "Education record" yields "Education record updated successfully"
// and "Failed to create education record".

func list[T any](d deps.Deps, label string, fn func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := fn(r.Context())
		if err != nil {
			d.Logger.Error("list failed",
				logger.String("resource", label),
				logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, internalErrorDetail)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

func create[C any](d deps.Deps, label string, fn func(context.Context, C) (string, error)) http.HandlerFunc {
	lower := strings.ToLower(label)
	return func(w http.ResponseWriter, r *http.Request) {
		var payload C
		if err := decodeJSON(r, &payload); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if detail, ok := checkRequired(payload); !ok {
			writeDetail(w, http.StatusBadRequest, detail)
			return
		}
		if _, err := fn(r.Context(), payload); err != nil {
			d.Logger.Error("create failed",
				logger.String("resource", label),
				logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Failed to create "+lower)
			return
		}
		writeAck(w, label+" created successfully")
	}
}

func update[P domain.Patch](d deps.Deps, label string, fn func(context.Context, string, map[string]any) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

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

		err := fn(r.Context(), id, fields)
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNotModified):
			writeDetail(w, http.StatusNotFound, label+" not found or not updated")
		case err != nil:
			d.Logger.Error("update failed",
				logger.String("resource", label),
				logger.String("id", id),
				logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, internalErrorDetail)
		default:
			writeAck(w, label+" updated successfully")
		}
	}
}

func remove(d deps.Deps, label string, fn func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := fn(r.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeDetail(w, http.StatusNotFound, label+" not found")
		case err != nil:
			d.Logger.Error("delete failed",
				logger.String("resource", label),
				logger.String("id", id),
				logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, internalErrorDetail)
		default:
			writeAck(w, label+" deleted successfully")
		}
	}
}
