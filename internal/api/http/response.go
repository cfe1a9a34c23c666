package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"kig-backend/internal/logger"
	"kig-backend/internal/repository"
	"kig-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service and repository errors onto the HTTP error
// taxonomy: validation 400, auth 401, missing entity 404, everything else a
// generic 500 that leaks no backend detail.
func writeServiceError(w http.ResponseWriter, err error) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, repository.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
