package httpadapter

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/render"

	"adboard/internal/core/port"
)

// errResponse is the JSON payload for every failed request.
type errResponse struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

// Render implements render.Renderer.
func (e *errResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// renderError maps domain errors onto HTTP responses. Load failures and
// empty filter results terminate the render with a warning payload; they
// are expected conditions, not faults, so they log at warn level.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var loadErr *port.LoadError
	switch {
	case errors.As(err, &loadErr):
		h.logger.Warn("report data unavailable", slog.Any("error", err))
		_ = render.Render(w, r, &errResponse{
			StatusCode: http.StatusServiceUnavailable,
			ErrorCode:  "DATA_UNAVAILABLE",
			Message:    loadErr.Message(),
		})
	case errors.Is(err, port.ErrEmptyResult):
		h.logger.Warn("empty filter result")
		_ = render.Render(w, r, &errResponse{
			StatusCode: http.StatusUnprocessableEntity,
			ErrorCode:  "EMPTY_RESULT",
			Message:    "No rows match the selected filters. Adjust the campaign or date selection.",
		})
	default:
		h.logger.Error("report error", slog.Any("error", err))
		_ = render.Render(w, r, &errResponse{
			StatusCode: http.StatusInternalServerError,
			ErrorCode:  "INTERNAL",
			Message:    "internal error",
		})
	}
}

func (h *Handler) renderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	_ = render.Render(w, r, &errResponse{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  "INVALID_PARAMETER",
		Message:    msg,
	})
}

// finite returns a pointer to v, or nil when v is NaN or infinite. JSON
// has no encoding for non-finite floats, so undefined rates serialise as
// null and the UI shows N/A.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
