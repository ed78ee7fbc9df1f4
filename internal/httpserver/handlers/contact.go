package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/logger"
)

// ContactResponse acknowledges a contact-form submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func SubmitContact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload domain.ContactCreate
		if err := decodeJSON(r, &payload); err != nil {
			writeDetail(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if detail, ok := checkRequired(payload); !ok {
			writeDetail(w, http.StatusBadRequest, detail)
			return
		}

		if _, err := d.Store.CreateContactSubmission(r.Context(), payload); err != nil {
			d.Logger.Error("contact submission failed", logger.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Failed to submit contact form")
			return
		}

		writeJSON(w, http.StatusOK, ContactResponse{
			Success: true,
			Message: "Thank you for your message! I'll get back to you soon.",
		})
	}
}

func ListContactSubmissions(d deps.Deps) http.HandlerFunc {
	return list(d, "Contact submission", d.Store.ListContactSubmissions)
}
