package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/service"
)

// CarouselHandler serves the public carousel and its admin curation
// endpoints.
type CarouselHandler struct {
	svc *service.CarouselService
}

// NewCarouselHandler constructs a CarouselHandler.
func NewCarouselHandler(svc *service.CarouselService) *CarouselHandler {
	return &CarouselHandler{svc: svc}
}

// Public handles GET /carousel
func (h *CarouselHandler) Public(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.Public(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// All handles GET /admin/carousel
func (h *CarouselHandler) All(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.All(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// Feature handles POST /admin/carousel/{eventID}
func (h *CarouselHandler) Feature(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.Feature(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Unfeature handles DELETE /admin/carousel/{eventID}
func (h *CarouselHandler) Unfeature(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Unfeature(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reorderRequest struct {
	Items []model.CarouselAssignment `json:"items"`
}

// Reorder handles PUT /admin/carousel/order
func (h *CarouselHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.svc.Reorder(r.Context(), req.Items); err != nil {
		respondError(w, err)
		return
	}

	events, err := h.svc.All(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
