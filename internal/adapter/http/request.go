package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

type extractRequest struct {
	Description string `json:"description"`
}

type completeRequest struct {
	Fields map[string]string `json:"fields"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Reason  string   `json:"reason,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// decode reads a JSON body into v and answers 400 when it cannot.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps use case errors to HTTP statuses. Unexpected errors are
// logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		extErr     *domain.ExtractionError
		incomplete *port.IncompleteBriefError
	)
	switch {
	case errors.Is(err, port.ErrSessionNotFound), errors.Is(err, port.ErrArtifactNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &extErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "extraction failed",
			Reason: string(extErr.Reason),
		})
	case errors.As(err, &incomplete):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "brief incomplete",
			Missing: incomplete.Missing,
		})
	case errors.Is(err, port.ErrNotValidated), errors.Is(err, port.ErrNoBrief):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		h.logger.Error(op+" error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
