package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/service"
)

// EventHandler serves public discovery plus hoster and admin event
// management.
type EventHandler struct {
	events  *service.EventService
	hosters *service.HosterService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(events *service.EventService, hosters *service.HosterService) *EventHandler {
	return &EventHandler{events: events, hosters: hosters}
}

func intQuery(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func eventFilterFromQuery(r *http.Request) model.EventFilter {
	q := r.URL.Query()
	return model.EventFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     intQuery(r, "page"),
		Limit:    intQuery(r, "limit"),
	}
}

// Discover handles GET /events
func (h *EventHandler) Discover(w http.ResponseWriter, r *http.Request) {
	events, total, err := h.events.Discover(r.Context(), eventFilterFromQuery(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: events, Total: total})
}

// Categories handles GET /events/categories
func (h *EventHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.events.Categories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetPublic handles GET /events/{id}
func (h *EventHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetPublic(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Create handles POST /hoster/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	hoster, err := h.hosters.Get(r.Context(), claims.AccountID)
	if err != nil {
		respondError(w, err)
		return
	}

	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	event, err := h.events.Create(r.Context(), hoster, req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// ListMine handles GET /hoster/events
func (h *EventHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	f := eventFilterFromQuery(r)
	f.HosterID = claims.AccountID
	if s := r.URL.Query().Get("status"); s != "" {
		f.Statuses = []model.EventStatus{model.EventStatus(s)}
	}

	events, total, err := h.events.List(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: events, Total: total})
}

// Update handles PUT /hoster/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())

	var req model.UpdateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	event, err := h.events.Update(r.Context(), claims.AccountID, claims.IsAdmin(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /hoster/events/{id} and DELETE /admin/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	if err := h.events.Delete(r.Context(), claims.AccountID, claims.IsAdmin(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminList handles GET /admin/events
func (h *EventHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	f := eventFilterFromQuery(r)
	f.HosterID = r.URL.Query().Get("hoster_id")
	if s := r.URL.Query().Get("status"); s != "" {
		f.Statuses = []model.EventStatus{model.EventStatus(s)}
	}

	events, total, err := h.events.List(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: events, Total: total})
}

type setEventStatusRequest struct {
	Status     model.EventStatus `json:"status"`
	AdminNotes string            `json:"admin_notes"`
}

// SetStatus handles PATCH /admin/events/{id}/status
func (h *EventHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setEventStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	event, err := h.events.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.AdminNotes)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}
