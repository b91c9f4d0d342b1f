package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quotewall/backend/internal/api/httpx"
	"github.com/quotewall/backend/internal/middleware"
	"github.com/quotewall/backend/internal/services"
)

type UserHandler struct {
	Svc *services.AdminService
}

func NewUserHandler(svc *services.AdminService) *UserHandler {
	return &UserHandler{Svc: svc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListUsers(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}
	if err := h.Svc.SetRole(r.Context(), chi.URLParam(r, "id"), req.Role); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "role updated"})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	acting := middleware.FromCtx(r.Context())
	if err := h.Svc.DeleteUser(r.Context(), chi.URLParam(r, "id"), acting.UserID); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}
	if err := h.Svc.UpdateProfile(r.Context(), chi.URLParam(r, "id"), req.Username, req.Email); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
