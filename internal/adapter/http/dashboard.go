package httpadapter

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// handleDashboard serves the single-page dashboard. All data arrives via
// the JSON API; the page itself is static.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, map[string]string{
		"Title": "Meta Ads Campaign Dashboard",
	}); err != nil {
		h.logger.Error("render dashboard", slog.Any("error", err))
	}
}
