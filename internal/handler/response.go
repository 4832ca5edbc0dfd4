package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"acedating-api/internal/logging"
	"acedating-api/internal/models"
	"acedating-api/internal/service"
)

// maxBodyBytes bounds request bodies; a letter is the largest legitimate one.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError replies {"error": msg} with the status matching the error kind.
// Unclassified errors are logged and surface as 500.
func writeError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeJSON reads a JSON body into dst. Unknown fields, trailing data and
// malformed numbers are validation errors. An empty body leaves dst as is.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, models.ErrNotANumber):
			return fmt.Errorf("%w: age must be a number", service.ErrValidation)
		default:
			return fmt.Errorf("%w: %v", service.ErrValidation, err)
		}
	}
	if dec.More() {
		return fmt.Errorf("%w: body must contain a single JSON object", service.ErrValidation)
	}
	return nil
}
