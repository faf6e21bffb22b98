package handler

import (
	"net/http"

	"github.com/eventra/eventra-backend/internal/model"
	"github.com/eventra/eventra-backend/internal/service"
)

// AuthHandler serves registration and login endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	hosters *service.HosterService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService, hosters *service.HosterService) *AuthHandler {
	return &AuthHandler{auth: auth, hosters: hosters}
}

type loginResponse struct {
	Token   string `json:"token"`
	Account any    `json:"account"`
}

// RegisterHoster handles POST /auth/hosters/register
func (h *AuthHandler) RegisterHoster(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterHosterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	hoster, err := h.auth.RegisterHoster(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hoster)
}

// LoginHoster handles POST /auth/hosters/login
func (h *AuthHandler) LoginHoster(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	token, hoster, err := h.auth.LoginHoster(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Account: hoster})
}

// LoginAdmin handles POST /auth/admin/login
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	token, admin, err := h.auth.LoginAdmin(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Account: admin})
}

// Me handles GET /hoster/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFrom(r.Context())
	hoster, err := h.hosters.Get(r.Context(), claims.AccountID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hoster)
}
