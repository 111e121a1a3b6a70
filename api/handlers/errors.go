// ABOUTME: Error-to-HTTP mapping shared by all API handlers
// ABOUTME: Translates core error types into status codes and a uniform JSON envelope

package handlers

import (
	"encoding/json"
	"net/http"

	"localrank-app-api/api/dto/responses"
	coreerrors "localrank-app-api/core/errors"
	"localrank-app-api/core/interfaces"
)

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a core error to its HTTP status and writes the error
// envelope. Validation failures are the caller's fault, a missing credential
// means the service cannot serve the request, and provider failures surface
// as a bad gateway.
func writeError(w http.ResponseWriter, logger interfaces.Logger, err error) {
	status := http.StatusInternalServerError
	category := "internal_error"

	switch {
	case coreerrors.IsValidation(err):
		status = http.StatusBadRequest
		category = "validation_error"
	case coreerrors.IsConfiguration(err):
		status = http.StatusServiceUnavailable
		category = "configuration_error"
	case coreerrors.IsService(err):
		status = http.StatusBadGateway
		category = "provider_error"
	}

	if status >= 500 && logger != nil {
		logger.Error("request failed", map[string]interface{}{
			"status": status,
			"error":  err.Error(),
		})
	}

	writeJSON(w, status, responses.ErrorResponse{
		Error:   category,
		Message: err.Error(),
	})
}

// writeNotFound writes a 404 envelope for an unknown resource.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, responses.ErrorResponse{
		Error:   "not_found",
		Message: message,
	})
}
