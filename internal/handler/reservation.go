package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/service"
)

// ReservationHandler serves booking creation and the reservation lifecycle.
type ReservationHandler struct {
	svc *service.ReservationService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// Create handles POST /reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	result, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Get handles GET /reservations/{id}
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Ticket handles GET /reservations/{id}/ticket
func (h *ReservationHandler) Ticket(w http.ResponseWriter, r *http.Request) {
	pdf, res, err := h.svc.Ticket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="ticket-%s.pdf"`, res.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func reservationFilterFromQuery(r *http.Request) model.ReservationFilter {
	q := r.URL.Query()
	return model.ReservationFilter{
		EventID: q.Get("event_id"),
		Phone:   q.Get("phone"),
		Status:  model.ReservationStatus(q.Get("status")),
		Page:    intQuery(r, "page"),
		Limit:   intQuery(r, "limit"),
	}
}

// Lookup handles GET /reservations
// Public reservation status lookup by phone, optionally narrowed to one
// event.
func (h *ReservationHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	f := reservationFilterFromQuery(r)
	if f.Phone == "" {
		writeError(w, http.StatusBadRequest, "phone query parameter is required")
		return
	}

	reservations, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reservations, Total: total})
}

// ListMine handles GET /hoster/reservations
func (h *ReservationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	f := reservationFilterFromQuery(r)
	f.HosterID = claims.AccountID

	reservations, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reservations, Total: total})
}

// AdminList handles GET /admin/reservations
func (h *ReservationHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	f := reservationFilterFromQuery(r)
	f.HosterID = r.URL.Query().Get("hoster_id")

	reservations, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reservations, Total: total})
}

// requireOwnership verifies the caller may mutate the reservation. Admins
// may act on any reservation.
func (h *ReservationHandler) requireOwnership(w http.ResponseWriter, r *http.Request, id string) bool {
	claims, _ := ClaimsFrom(r.Context())
	if claims.IsAdmin() {
		return true
	}
	res, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return false
	}
	if res.HosterID != claims.AccountID {
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

type setReservationStatusRequest struct {
	Status model.ReservationStatus `json:"status"`
}

// SetStatus handles PATCH /hoster/reservations/{id}/status
func (h *ReservationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.requireOwnership(w, r, id) {
		return
	}

	var req setReservationStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	res, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type setPaymentStatusRequest struct {
	PaymentStatus model.PaymentStatus `json:"payment_status"`
}

// SetPaymentStatus handles PATCH /hoster/reservations/{id}/payment
func (h *ReservationHandler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.requireOwnership(w, r, id) {
		return
	}

	var req setPaymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	res, err := h.svc.SetPaymentStatus(r.Context(), id, req.PaymentStatus)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
