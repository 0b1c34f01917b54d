package api

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// errorResponse is the shape of every error reply
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// writeError writes a client or server error with a human-readable reason
func writeError(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, errorResponse{Success: false, Error: reason})
}
