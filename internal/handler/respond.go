// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventra/eventra-backend/internal/logger"
	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/repository"
	"github.com/eventra/eventra-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// listResponse is the standard paginated envelope.
type listResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

// respondError maps domain errors to HTTP statuses so every handler reports
// the same way.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrCapacityExceeded):
		writeError(w, http.StatusConflict, "not enough seats available")
	case errors.Is(err, repository.ErrNotBookable):
		writeError(w, http.StatusConflict, "event is not open for booking")
	case errors.Is(err, repository.ErrDuplicateGuest):
		writeError(w, http.StatusConflict, "this phone number is already on the guest list")
	case errors.Is(err, repository.ErrAlreadyFeatured):
		writeError(w, http.StatusConflict, "event is already in the carousel")
	case errors.Is(err, repository.ErrNotFeatured):
		writeError(w, http.StatusConflict, "event is not in the carousel")
	case errors.Is(err, repository.ErrCarouselFull):
		writeError(w, http.StatusConflict, "carousel is full")
	case errors.Is(err, repository.ErrNotEligible):
		writeError(w, http.StatusConflict, "event is not eligible for the carousel")
	case errors.Is(err, repository.ErrEventHasReservations):
		writeError(w, http.StatusConflict, "event has active reservations")
	case errors.Is(err, repository.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email is already registered")
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid status transition")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrAccountInactive):
		writeError(w, http.StatusForbidden, "account is not active")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrTicketUnavailable):
		writeError(w, http.StatusConflict, "ticket not available for this reservation")
	default:
		logger.Log.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
