package httpadapter

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/render"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

const dateLayout = "2006-01-02"

// moneyFormat renders amounts with thousands separators and exactly two
// decimals, matching the export's BOB figures.
const moneyFormat = "#,###.##"

// reportQuery holds the raw filter parameters for validation. Dates must
// be ISO (YYYY-MM-DD); both are optional and default to the dataset's
// bounds when omitted.
type reportQuery struct {
	From string `validate:"omitempty,datetime=2006-01-02"`
	To   string `validate:"omitempty,datetime=2006-01-02"`
}

// handleReport serves GET /api/v1/report. Repeated `campaign` parameters
// select campaigns (none = all); `from`/`to` bound the report period.
// It responds 400 on malformed parameters, 422 when the filter matches
// nothing, 503 when the export cannot be loaded.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rq := reportQuery{From: q.Get("from"), To: q.Get("to")}
	if err := h.validate.Struct(rq); err != nil {
		h.renderBadRequest(w, r, "from/to must be dates in YYYY-MM-DD format")
		return
	}

	f := domain.Filter{Campaigns: q["campaign"]}
	if rq.From != "" {
		f.From, _ = time.Parse(dateLayout, rq.From)
	}
	if rq.To != "" {
		f.To, _ = time.Parse(dateLayout, rq.To)
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		h.renderBadRequest(w, r, "'from' must not be after 'to'")
		return
	}

	rep, err := h.svc.BuildReport(r.Context(), f)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, newReportResponse(rep))
}

// reportResponse is the JSON shape of one dashboard render. Raw values
// are kept for the charts; display strings carry the KPI formatting
// (thousands separators, two decimals, units).
type reportResponse struct {
	Meta       metaView         `json:"meta"`
	Summary    summaryView      `json:"summary"`
	Efficiency []efficiencyView `json:"efficiency"`
	Totals     []totalsView     `json:"campaign_totals"`
	Series     []seriesView     `json:"series"`
	Detail     []detailRow      `json:"detail"`
}

type metaView struct {
	DatasetID    string    `json:"dataset_id"`
	Source       string    `json:"source"`
	TotalRows    int       `json:"total_rows"`
	FilteredRows int       `json:"filtered_rows"`
	GeneratedAt  time.Time `json:"generated_at"`
}

type summaryView struct {
	TotalSpend          float64  `json:"total_spend"`
	TotalSpendDisplay   string   `json:"total_spend_display"`
	TotalResults        int64    `json:"total_results"`
	TotalResultsDisplay string   `json:"total_results_display"`
	AvgCTR              *float64 `json:"avg_ctr"`
	AvgCTRDisplay       string   `json:"avg_ctr_display"`
	AvgCPM              *float64 `json:"avg_cpm"`
	AvgCPMDisplay       string   `json:"avg_cpm_display"`
}

type efficiencyView struct {
	Campaign      string   `json:"campaign"`
	Label         string   `json:"label"`
	Spend         float64  `json:"spend"`
	Results       int64    `json:"results"`
	Impressions   int64    `json:"impressions"`
	CostPerResult float64  `json:"cost_per_result"`
	CTR           *float64 `json:"ctr"`
	CPM           *float64 `json:"cpm"`
}

type totalsView struct {
	Campaign string  `json:"campaign"`
	Label    string  `json:"label"`
	Results  int64   `json:"results"`
	Spend    float64 `json:"spend"`
}

type seriesView struct {
	Campaign string   `json:"campaign"`
	Label    string   `json:"label"`
	Dates    []string `json:"dates"`
	Results  []int64  `json:"results"`
}

type detailRow struct {
	Campaign      string   `json:"campaign"`
	Label         string   `json:"label"`
	ReportStart   string   `json:"report_start"`
	ReportEnd     string   `json:"report_end"`
	Spend         float64  `json:"spend"`
	SpendDisplay  string   `json:"spend_display"`
	Results       int64    `json:"results"`
	Impressions   int64    `json:"impressions"`
	Reach         int64    `json:"reach"`
	CTR           *float64 `json:"ctr"`
	CTRDisplay    string   `json:"ctr_display"`
	CPM           *float64 `json:"cpm"`
	CPMDisplay    string   `json:"cpm_display"`
	CostPerResult float64  `json:"cost_per_result"`
}

func newReportResponse(rep *port.Report) reportResponse {
	out := reportResponse{
		Meta: metaView{
			DatasetID:    rep.Meta.DatasetID,
			Source:       rep.Meta.Source,
			TotalRows:    rep.Meta.TotalRows,
			FilteredRows: rep.Meta.FilteredRows,
			GeneratedAt:  rep.Meta.GeneratedAt,
		},
		Summary:    newSummaryView(rep.Summary),
		Efficiency: make([]efficiencyView, 0, len(rep.Efficiency)),
		Totals:     make([]totalsView, 0, len(rep.Totals)),
		Series:     make([]seriesView, 0, len(rep.Series)),
		Detail:     make([]detailRow, 0, len(rep.Detail)),
	}
	for _, p := range rep.Efficiency {
		out.Efficiency = append(out.Efficiency, efficiencyView{
			Campaign:      p.Campaign,
			Label:         p.Label,
			Spend:         p.Spend,
			Results:       p.Results,
			Impressions:   p.Impressions,
			CostPerResult: p.CostPerResult,
			CTR:           finite(p.CTR),
			CPM:           finite(p.CPM),
		})
	}
	for _, t := range rep.Totals {
		out.Totals = append(out.Totals, totalsView{
			Campaign: t.Campaign,
			Label:    t.Label,
			Results:  t.Results,
			Spend:    t.Spend,
		})
	}
	for _, s := range rep.Series {
		sv := seriesView{
			Campaign: s.Campaign,
			Label:    s.Label,
			Dates:    make([]string, 0, len(s.Points)),
			Results:  make([]int64, 0, len(s.Points)),
		}
		for _, p := range s.Points {
			sv.Dates = append(sv.Dates, formatDate(p.Date))
			sv.Results = append(sv.Results, p.Results)
		}
		out.Series = append(out.Series, sv)
	}
	for _, rec := range rep.Detail {
		out.Detail = append(out.Detail, newDetailRow(rec))
	}
	return out
}

func newSummaryView(s port.Summary) summaryView {
	return summaryView{
		TotalSpend:          s.TotalSpend,
		TotalSpendDisplay:   humanize.FormatFloat(moneyFormat, s.TotalSpend) + " BOB",
		TotalResults:        s.TotalResults,
		TotalResultsDisplay: humanize.Comma(s.TotalResults),
		AvgCTR:              finite(s.AvgCTR),
		AvgCTRDisplay:       formatRate(s.AvgCTR, "%"),
		AvgCPM:              finite(s.AvgCPM),
		AvgCPMDisplay:       formatRate(s.AvgCPM, " BOB"),
	}
}

func newDetailRow(rec domain.Record) detailRow {
	return detailRow{
		Campaign:      rec.Campaign,
		Label:         domain.CampaignLabel(rec.Campaign),
		ReportStart:   formatDate(rec.ReportStart),
		ReportEnd:     formatDate(rec.ReportEnd),
		Spend:         rec.Spend,
		SpendDisplay:  humanize.FormatFloat(moneyFormat, rec.Spend) + " BOB",
		Results:       rec.Results,
		Impressions:   rec.Impressions,
		Reach:         rec.Reach,
		CTR:           finite(rec.CTR),
		CTRDisplay:    formatRate(rec.CTR, "%"),
		CPM:           finite(rec.CPM),
		CPMDisplay:    formatRate(rec.CPM, " BOB"),
		CostPerResult: rec.CostPerResult,
	}
}

// formatRate renders a rate with two decimals and a unit, or N/A when the
// value is undefined.
func formatRate(v float64, unit string) string {
	p := finite(v)
	if p == nil {
		return "N/A"
	}
	return humanize.FormatFloat(moneyFormat, *p) + unit
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
