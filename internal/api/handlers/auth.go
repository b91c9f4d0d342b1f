package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quotewall/backend/internal/api/httpx"
	"github.com/quotewall/backend/internal/auth"
	"github.com/quotewall/backend/internal/middleware"
	"github.com/quotewall/backend/internal/services"
)

type AuthHandler struct {
	Svc     *services.AuthService
	Cookies *auth.CookieManager
}

func NewAuthHandler(svc *services.AuthService, cookies *auth.CookieManager) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}
	u, err := h.Svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}
	sid, data, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	token, err := h.Cookies.Sign(sid)
	if err != nil {
		writeErr(w, err)
		return
	}
	h.Cookies.SetCookie(w, token)
	httpx.WriteJSON(w, http.StatusOK, data)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	u := middleware.FromCtx(r.Context())
	if err := h.Svc.Logout(r.Context(), u.SID); err != nil {
		writeErr(w, err)
		return
	}
	h.Cookies.ClearCookie(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
