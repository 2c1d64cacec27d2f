package httpadapter

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleExtract runs extraction on the submitted description. The request
// body is {"description": "..."}; an empty description is rejected with 400.
// A failed extraction answers 422 with the failure reason.
func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "description is required"})
		return
	}
	s, err := h.svc.Extract(r.Context(), chi.URLParam(r, "id"), req.Description)
	if err != nil {
		h.writeError(w, r, "extract", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// handleComplete fills missing brief fields from {"fields": {...}}. It
// answers 422 with the fields that are still missing.
func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.svc.Complete(r.Context(), chi.URLParam(r, "id"), req.Fields)
	if err != nil {
		h.writeError(w, r, "complete", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
