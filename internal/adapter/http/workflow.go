package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleRun runs the full campaign workflow for a validated session and
// returns the workflow result.
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.RunWorkflow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "run workflow", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListArtifacts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "list artifacts", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleDownloadArtifact sends the stored JSON document as an attachment.
func (h *Handler) handleDownloadArtifact(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetArtifact(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, "download artifact", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Name))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(a.Content); err != nil {
		h.logger.Error("write artifact error", slog.String("name", a.Name), slog.Any("error", err))
	}
}
