// Package handlers maps HTTP requests onto the store and back. Every
// write acknowledgement uses the ApiResponse envelope; every error uses
// a single {"detail": string} body with status 400, 404, or 500.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ApiResponse acknowledges a successful write.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

const internalErrorDetail = "Internal server error"

var validate = newValidator()

// newValidator reports violations under the field's json name, which is
// what callers see on the wire.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeAck(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: message})
}

var errEmptyBody = errors.New("empty request body")

// decodeJSON decodes the request body into v. A missing body is
// reported as errEmptyBody so patch endpoints can treat it like an
// empty patch instead of a malformed one.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}

// checkRequired validates a create payload and renders the first
// violation as a client-facing detail string.
func checkRequired(v any) (string, bool) {
	err := validate.Struct(v)
	if err == nil {
		return "", true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("Field '%s' is required", verrs[0].Field()), false
	}
	return "Invalid request body", false
}
