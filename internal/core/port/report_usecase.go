package port

import (
	"context"
	"errors"
	"time"

	"adboard/internal/core/domain"
)

// ErrEmptyResult is returned when the filter selection yields no rows.
// The dashboard surfaces it as a warning and skips chart rendering for
// that request.
var ErrEmptyResult = errors.New("no rows match the selected filters")

// ReportUseCase defines the business operations exposed by the reporting
// engine. This interface is the primary port into the application domain.
type ReportUseCase interface {
	// BuildReport applies the filter to the cleaned dataset and returns
	// KPIs, the three chart inputs and the detail listing. It returns a
	// *LoadError when the export cannot be loaded and ErrEmptyResult when
	// no record passes the filter.
	BuildReport(ctx context.Context, f domain.Filter) (*Report, error)

	// FilterOptions returns the values the dashboard controls are built
	// from: the distinct campaigns and the dataset's date bounds.
	FilterOptions(ctx context.Context) (*FilterOptions, error)
}

// Report is everything one render of the dashboard needs. It is a DTO for
// the HTTP layer and carries no domain behaviour.
type Report struct {
	Meta       ReportMeta
	Summary    Summary
	Efficiency []EfficiencyPoint
	Totals     []CampaignTotals
	Series     []CampaignSeries
	Detail     []domain.Record
}

// ReportMeta identifies the dataset snapshot a report was computed from.
type ReportMeta struct {
	DatasetID    string
	Source       string
	TotalRows    int
	FilteredRows int
	GeneratedAt  time.Time
}

// Summary holds the four aggregate KPIs over the filtered records. The
// averages skip records whose CTR/CPM is undefined (zero impressions)
// and are NaN when no record contributes a finite value.
type Summary struct {
	TotalSpend   float64
	TotalResults int64
	AvgCTR       float64
	AvgCPM       float64
}

// EfficiencyPoint is one scatter-chart point: a single record plotted as
// spend vs. results, sized by impressions.
type EfficiencyPoint struct {
	Campaign      string
	Label         string
	Spend         float64
	Results       int64
	Impressions   int64
	CostPerResult float64
	CTR           float64
	CPM           float64
}

// CampaignTotals is one grouped-bar entry: a campaign's summed results
// and spend. The usecase returns these sorted by results, descending.
type CampaignTotals struct {
	Campaign string
	Label    string
	Results  int64
	Spend    float64
}

// CampaignSeries is one line of the evolution chart: a campaign's results
// over time, points ordered chronologically by report start.
type CampaignSeries struct {
	Campaign string
	Label    string
	Points   []SeriesPoint
}

// SeriesPoint is a single observation in a campaign time series.
type SeriesPoint struct {
	Date    time.Time
	Results int64
}

// FilterOptions bounds the dashboard controls: which campaigns can be
// selected and the date range the pickers may cover.
type FilterOptions struct {
	DatasetID string
	Campaigns []CampaignOption
	MinDate   time.Time
	MaxDate   time.Time
	Rows      int
}

// CampaignOption pairs a campaign's full name (the filter value) with its
// display label.
type CampaignOption struct {
	Name  string
	Label string
}
