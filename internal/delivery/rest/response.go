package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"baskettracker/internal/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil && status >= http.StatusInternalServerError {
		s.logger.Error("%s: %v", message, err)
	}

	if err != nil && message == "" {
		message = err.Error()
	}

	s.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

// respondSessionError maps session errors onto HTTP statuses.
func (s *Server) respondSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrPlayerNotFound):
		s.respondError(w, http.StatusNotFound, "", err)
	case errors.Is(err, models.ErrMatchStarted):
		s.respondError(w, http.StatusConflict, "", err)
	case errors.Is(err, models.ErrEmptyName),
		errors.Is(err, models.ErrInvalidActionKind),
		errors.Is(err, models.ErrInvalidMagnitude),
		errors.Is(err, models.ErrUnrecognizedFormat):
		s.respondError(w, http.StatusBadRequest, "", err)
	default:
		s.respondError(w, http.StatusInternalServerError, "request failed", err)
	}
}
