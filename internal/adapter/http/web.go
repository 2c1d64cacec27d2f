package httpadapter

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"onebot-ads/internal/core/domain"
)

//go:embed web/index.html
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/index.html"))

type formField struct {
	Key   string
	Label string
}

type indexData struct {
	Fields []formField
}

// handleIndex renders the single-page campaign form.
func (h *Handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := indexData{Fields: make([]formField, 0, len(domain.BriefFields))}
	for _, f := range domain.BriefFields {
		data.Fields = append(data.Fields, formField{Key: f, Label: domain.BriefLabels[f]})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		h.logger.Error("render index error", slog.Any("error", err))
	}
}
