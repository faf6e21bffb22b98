package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventra/eventra-backend/internal/repository"
	"github.com/eventra/eventra-backend/internal/service"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{repository.ErrNotFound, http.StatusNotFound},
		{repository.ErrCapacityExceeded, http.StatusConflict},
		{repository.ErrNotBookable, http.StatusConflict},
		{repository.ErrDuplicateGuest, http.StatusConflict},
		{repository.ErrAlreadyFeatured, http.StatusConflict},
		{repository.ErrNotFeatured, http.StatusConflict},
		{repository.ErrCarouselFull, http.StatusConflict},
		{repository.ErrNotEligible, http.StatusConflict},
		{repository.ErrEventHasReservations, http.StatusConflict},
		{repository.ErrEmailTaken, http.StatusConflict},
		{fmt.Errorf("%w: capacity must be at least 1", service.ErrValidation), http.StatusBadRequest},
		{service.ErrInvalidTransition, http.StatusConflict},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrAccountInactive, http.StatusForbidden},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrTicketUnavailable, http.StatusConflict},
		{fmt.Errorf("something unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		respondError(rec, tc.err)
		assert.Equalf(t, tc.code, rec.Code, "error %v", tc.err)
		assert.Contains(t, rec.Body.String(), `"error"`)
	}

	// Wrapped domain errors still map through errors.Is.
	rec := httptest.NewRecorder()
	respondError(rec, fmt.Errorf("create booking: %w", repository.ErrCapacityExceeded))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
