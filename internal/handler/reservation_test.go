package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/repository"
	"github.com/eventra/eventra-backend/internal/service"
	"github.com/eventra/eventra-backend/internal/ticket"
)

type stubSeats struct{}

func (stubSeats) GetByID(context.Context, string) (*model.Event, error) {
	return nil, repository.ErrNotFound
}
func (stubSeats) ReserveSeats(context.Context, string, int) (*model.Event, error) {
	return nil, repository.ErrNotFound
}
func (stubSeats) ReleaseSeats(context.Context, string, int) error { return nil }

type stubReservations struct {
	reservations []model.Reservation
}

func (s *stubReservations) Create(context.Context, *model.Reservation) error { return nil }

func (s *stubReservations) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			return &s.reservations[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubReservations) SetStatus(context.Context, string, model.ReservationStatus) error {
	return nil
}

func (s *stubReservations) SetPaymentStatus(context.Context, string, model.PaymentStatus) error {
	return nil
}

func (s *stubReservations) List(_ context.Context, f model.ReservationFilter) ([]model.Reservation, int, error) {
	var out []model.Reservation
	for _, res := range s.reservations {
		if f.Phone != "" && res.Phone != f.Phone {
			continue
		}
		if f.EventID != "" && res.EventID != f.EventID {
			continue
		}
		out = append(out, res)
	}
	return out, len(out), nil
}

type stubGuests struct{}

func (stubGuests) Create(context.Context, *model.GuestEntry) error { return nil }
func (stubGuests) GetByReservation(context.Context, string) (*model.GuestEntry, error) {
	return nil, repository.ErrNotFound
}

type stubHosters struct{}

func (stubHosters) GetByID(context.Context, string) (*model.Hoster, error) {
	return nil, repository.ErrNotFound
}

func newLookupRouter(reservations []model.Reservation) http.Handler {
	svc := service.NewReservationService(stubSeats{}, &stubReservations{reservations: reservations},
		stubGuests{}, stubHosters{}, ticket.NewGenerator("http://localhost:8080"))
	h := NewReservationHandler(svc)

	r := chi.NewRouter()
	r.Get("/reservations", h.Lookup)
	return r
}

func TestLookupRequiresPhone(t *testing.T) {
	router := newLookupRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone")
}

func TestLookupFiltersByPhone(t *testing.T) {
	router := newLookupRouter([]model.Reservation{
		{ID: "r1", EventID: "ev1", Phone: "+491701111111", Status: model.ReservationConfirmed},
		{ID: "r2", EventID: "ev1", Phone: "+491702222222", Status: model.ReservationPending},
		{ID: "r3", EventID: "ev2", Phone: "+491701111111", Status: model.ReservationPending},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/reservations?phone=%2B491701111111", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []model.Reservation `json:"items"`
		Total int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	for _, res := range body.Items {
		assert.Equal(t, "+491701111111", res.Phone)
	}

	// Optional event narrowing.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/reservations?phone=%2B491701111111&event_id=ev2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "r3", body.Items[0].ID)
}
