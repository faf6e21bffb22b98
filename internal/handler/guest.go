package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/service"
)

// GuestHandler serves public guest list registration and the hoster-facing
// guest management endpoints.
type GuestHandler struct {
	svc    *service.GuestService
	events *service.EventService
}

// NewGuestHandler constructs a GuestHandler.
func NewGuestHandler(svc *service.GuestService, events *service.EventService) *GuestHandler {
	return &GuestHandler{svc: svc, events: events}
}

// Admit handles POST /guests
func (h *GuestHandler) Admit(w http.ResponseWriter, r *http.Request) {
	var req model.AdmitGuestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	addedBy := "public"
	if claims, ok := ClaimsFrom(r.Context()); ok {
		addedBy = claims.Role
	}
	result, err := h.svc.Admit(r.Context(), req, addedBy)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// requireEventAccess verifies the caller owns the event whose guest list is
// being read or mutated. Admins pass unconditionally.
func (h *GuestHandler) requireEventAccess(w http.ResponseWriter, r *http.Request, eventID string) bool {
	claims, _ := ClaimsFrom(r.Context())
	if claims.IsAdmin() {
		return true
	}
	event, err := h.events.Get(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return false
	}
	if event.HosterID != claims.AccountID {
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

// ListByEvent handles GET /hoster/events/{id}/guests
func (h *GuestHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if !h.requireEventAccess(w, r, eventID) {
		return
	}

	q := r.URL.Query()
	f := model.GuestFilter{
		EventID:    eventID,
		RSVPStatus: model.RSVPStatus(q.Get("rsvp_status")),
		Search:     q.Get("search"),
		Page:       intQuery(r, "page"),
		Limit:      intQuery(r, "limit"),
	}
	if v := q.Get("checked_in"); v != "" {
		checkedIn, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "checked_in must be a boolean")
			return
		}
		f.CheckedIn = &checkedIn
	}

	guests, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	if guests == nil {
		guests = []model.GuestEntry{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: guests, Total: total})
}

// Stats handles GET /hoster/events/{id}/guests/stats
func (h *GuestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if !h.requireEventAccess(w, r, eventID) {
		return
	}
	stats, err := h.svc.Stats(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// requireGuestAccess verifies ownership of the event behind a guest entry
// and returns the entry.
func (h *GuestHandler) requireGuestAccess(w http.ResponseWriter, r *http.Request, guestID string) (*model.GuestEntry, bool) {
	g, err := h.svc.Get(r.Context(), guestID)
	if err != nil {
		respondError(w, err)
		return nil, false
	}
	if !h.requireEventAccess(w, r, g.EventID) {
		return nil, false
	}
	return g, true
}

// Update handles PATCH /hoster/guests/{id}
func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.requireGuestAccess(w, r, id); !ok {
		return
	}

	var req model.UpdateGuestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	g, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// CheckIn handles POST /hoster/guests/{id}/checkin
func (h *GuestHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.requireGuestAccess(w, r, id); !ok {
		return
	}
	g, err := h.svc.CheckIn(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// Remove handles DELETE /hoster/guests/{id}
func (h *GuestHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.requireGuestAccess(w, r, id); !ok {
		return
	}
	if err := h.svc.Remove(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
