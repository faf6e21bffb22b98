package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/service"
)

// AdminHandler serves hoster moderation and the dashboards.
type AdminHandler struct {
	hosters *service.HosterService
	stats   *service.StatsService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(hosters *service.HosterService, stats *service.StatsService) *AdminHandler {
	return &AdminHandler{hosters: hosters, stats: stats}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HosterDashboard handles GET /hoster/dashboard
func (h *AdminHandler) HosterDashboard(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	stats, err := h.stats.HosterDashboard(r.Context(), claims.AccountID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListHosters handles GET /admin/hosters
func (h *AdminHandler) ListHosters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hosters, total, err := h.hosters.List(r.Context(),
		model.HosterStatus(q.Get("status")), q.Get("search"),
		intQuery(r, "page"), intQuery(r, "limit"))
	if err != nil {
		respondError(w, err)
		return
	}
	if hosters == nil {
		hosters = []model.Hoster{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: hosters, Total: total})
}

// GetHoster handles GET /admin/hosters/{id}
func (h *AdminHandler) GetHoster(w http.ResponseWriter, r *http.Request) {
	hoster, err := h.hosters.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hoster)
}

type setHosterStatusRequest struct {
	Status     model.HosterStatus `json:"status"`
	AdminNotes string             `json:"admin_notes"`
}

// SetHosterStatus handles PATCH /admin/hosters/{id}/status
func (h *AdminHandler) SetHosterStatus(w http.ResponseWriter, r *http.Request) {
	var req setHosterStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	hoster, err := h.hosters.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.AdminNotes)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hoster)
}

type setCommissionRequest struct {
	CommissionRate float64 `json:"commission_rate"`
}

// SetCommissionRate handles PATCH /admin/hosters/{id}/commission
func (h *AdminHandler) SetCommissionRate(w http.ResponseWriter, r *http.Request) {
	var req setCommissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	hoster, err := h.hosters.SetCommissionRate(r.Context(), chi.URLParam(r, "id"), req.CommissionRate)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hoster)
}
