package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quotewall/backend/internal/api/httpx"
	"github.com/quotewall/backend/internal/middleware"
	"github.com/quotewall/backend/internal/quote"
	"github.com/quotewall/backend/internal/services"
)

type QuoteHandler struct {
	Svc *services.QuoteService
}

func NewQuoteHandler(svc *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{Svc: svc}
}

// Feed handles GET / with optional `sort` (newest|oldest) and `search`
// (speaker substring) query params.
func (h *QuoteHandler) Feed(w http.ResponseWriter, r *http.Request) {
	u := middleware.FromCtx(r.Context())
	sort := services.SortNewest
	if r.URL.Query().Get("sort") == string(services.SortOldest) {
		sort = services.SortOldest
	}
	quotes, err := h.Svc.List(r.Context(), u.UserID, sort, r.URL.Query().Get("search"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, quotes)
}

type quoteReq struct {
	Names  []string `json:"names"`
	Quotes []string `json:"quotes"`
}

func (h *QuoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}
	q, err := h.Svc.Add(r.Context(), req.Names, req.Quotes)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, q)
}

// EditForm returns the quote with its body parsed into (speaker, text) pairs
// so the client can populate the edit form.
func (h *QuoteHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	q, lines, err := h.Svc.GetForEdit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, struct {
		ID    string       `json:"id"`
		Lines []quote.Line `json:"lines"`
	}{ID: q.ID, Lines: lines})
}

func (h *QuoteHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req quoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
		return
	}
	if err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), req.Names, req.Quotes); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *QuoteHandler) Like(w http.ResponseWriter, r *http.Request) {
	u := middleware.FromCtx(r.Context())
	liked, err := h.Svc.ToggleLike(r.Context(), chi.URLParam(r, "id"), u.UserID)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}
