package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCreateSession starts a new form session and returns it with 201.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.CreateSession(r.Context())
	if err != nil {
		h.writeError(w, r, "create session", err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get session", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// handleResetSession drops the session; the form starts over with a new
// one. It answers 204 No Content.
func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "reset session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
