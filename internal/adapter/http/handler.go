package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"adboard/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP
// adapter: it holds the reporting usecase, a structured logger and a
// validator for query parameters. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.ReportUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ReportUseCase, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
	}
	r := chi.NewRouter()

	r.Get("/", h.handleDashboard)
	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/report", h.handleReport)
		r.Get("/filters", h.handleFilterOptions)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
