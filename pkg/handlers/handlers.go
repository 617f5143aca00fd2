// Package handlers provides shared HTTP response helpers for domain handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/attest/pkg/faults"
)

// ErrorResponse is the JSON body written for every failed request.
// Code, EntityType, and Identifier are populated for taxonomy errors.
type ErrorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code,omitempty"`
	EntityType string `json:"entity_type,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

// RespondJSON writes data as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes it as a JSON error response.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}

	body := ErrorResponse{Error: err.Error()}

	var fe *faults.Error
	if errors.As(err, &fe) {
		body.Code = fe.Code()
		body.EntityType = fe.Entity
		body.Identifier = fe.Identifier
	}

	RespondJSON(w, status, body)
}
