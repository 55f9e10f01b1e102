package httpadapter

import (
	"net/http"

	"github.com/go-chi/render"
)

type filterOptionsResponse struct {
	DatasetID string           `json:"dataset_id"`
	Campaigns []campaignOption `json:"campaigns"`
	MinDate   string           `json:"min_date"`
	MaxDate   string           `json:"max_date"`
	Rows      int              `json:"rows"`
}

type campaignOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// handleFilterOptions serves GET /api/v1/filters: the campaign list and
// date bounds the dashboard builds its controls from.
func (h *Handler) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.FilterOptions(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	resp := filterOptionsResponse{
		DatasetID: opts.DatasetID,
		Campaigns: make([]campaignOption, 0, len(opts.Campaigns)),
		MinDate:   formatDate(opts.MinDate),
		MaxDate:   formatDate(opts.MaxDate),
		Rows:      opts.Rows,
	}
	for _, c := range opts.Campaigns {
		resp.Campaigns = append(resp.Campaigns, campaignOption{Name: c.Name, Label: c.Label})
	}
	render.JSON(w, r, resp)
}
