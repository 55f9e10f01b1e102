package usecase

import (
	"context"
	"math"
	"slices"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// ReportUseCase provides the filter-and-aggregate logic behind the
// dashboard. It orchestrates the dataset repository to implement the
// ReportUseCase port.
type ReportUseCase struct {
	repo port.DatasetRepository
}

// NewReportUseCase creates a new usecase with the provided repository.
func NewReportUseCase(repo port.DatasetRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// BuildReport applies the filter to the cleaned dataset and assembles the
// KPIs, chart inputs and detail listing for one render. Load failures
// propagate as *port.LoadError; an empty filter result stops the render
// with port.ErrEmptyResult and produces no charts.
func (u *ReportUseCase) BuildReport(ctx context.Context, f domain.Filter) (*port.Report, error) {
	ds, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	rows := f.Apply(ds.Records)
	if len(rows) == 0 {
		return nil, port.ErrEmptyResult
	}

	return &port.Report{
		Meta: port.ReportMeta{
			DatasetID:    ds.ID,
			Source:       ds.Source,
			TotalRows:    len(ds.Records),
			FilteredRows: len(rows),
			GeneratedAt:  time.Now().UTC(),
		},
		Summary:    summarize(rows),
		Efficiency: efficiencyPoints(rows),
		Totals:     campaignTotals(rows),
		Series:     campaignSeries(rows),
		Detail:     detailListing(rows),
	}, nil
}

// FilterOptions returns the control bounds for the dashboard: distinct
// campaigns in first-seen order and the dataset's min/max report dates.
func (u *ReportUseCase) FilterOptions(ctx context.Context) (*port.FilterOptions, error) {
	ds, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	names := ds.Campaigns()
	opts := make([]port.CampaignOption, 0, len(names))
	for _, name := range names {
		opts = append(opts, port.CampaignOption{Name: name, Label: domain.CampaignLabel(name)})
	}
	min, max := ds.DateBounds()
	return &port.FilterOptions{
		DatasetID: ds.ID,
		Campaigns: opts,
		MinDate:   min,
		MaxDate:   max,
		Rows:      len(ds.Records),
	}, nil
}

// summarize computes the four KPIs. Records with undefined CTR/CPM (zero
// impressions) are excluded from the averages; when every record is
// excluded the average stays NaN and the presentation layer shows N/A.
func summarize(rows []domain.Record) port.Summary {
	s := port.Summary{AvgCTR: math.NaN(), AvgCPM: math.NaN()}
	var ctrSum, cpmSum float64
	var ctrN, cpmN int
	for _, r := range rows {
		s.TotalSpend += r.Spend
		s.TotalResults += r.Results
		if !math.IsNaN(r.CTR) {
			ctrSum += r.CTR
			ctrN++
		}
		if !math.IsNaN(r.CPM) {
			cpmSum += r.CPM
			cpmN++
		}
	}
	if ctrN > 0 {
		s.AvgCTR = ctrSum / float64(ctrN)
	}
	if cpmN > 0 {
		s.AvgCPM = cpmSum / float64(cpmN)
	}
	return s
}

// efficiencyPoints maps each record to a scatter point (spend vs. results
// sized by impressions) with the per-record rates as hover data.
func efficiencyPoints(rows []domain.Record) []port.EfficiencyPoint {
	pts := make([]port.EfficiencyPoint, 0, len(rows))
	for _, r := range rows {
		pts = append(pts, port.EfficiencyPoint{
			Campaign:      r.Campaign,
			Label:         domain.CampaignLabel(r.Campaign),
			Spend:         r.Spend,
			Results:       r.Results,
			Impressions:   r.Impressions,
			CostPerResult: r.CostPerResult,
			CTR:           r.CTR,
			CPM:           r.CPM,
		})
	}
	return pts
}

// campaignTotals groups results and spend per campaign and sorts the
// groups by results, descending. Grouping preserves first-seen order so
// equal totals keep a stable position.
func campaignTotals(rows []domain.Record) []port.CampaignTotals {
	index := make(map[string]int, len(rows))
	var totals []port.CampaignTotals
	for _, r := range rows {
		i, ok := index[r.Campaign]
		if !ok {
			i = len(totals)
			index[r.Campaign] = i
			totals = append(totals, port.CampaignTotals{
				Campaign: r.Campaign,
				Label:    domain.CampaignLabel(r.Campaign),
			})
		}
		totals[i].Results += r.Results
		totals[i].Spend += r.Spend
	}
	slices.SortStableFunc(totals, func(a, b port.CampaignTotals) int {
		switch {
		case a.Results > b.Results:
			return -1
		case a.Results < b.Results:
			return 1
		default:
			return 0
		}
	})
	return totals
}

// campaignSeries builds one time series per distinct campaign, each
// ordered chronologically by report start.
func campaignSeries(rows []domain.Record) []port.CampaignSeries {
	index := make(map[string]int, len(rows))
	var series []port.CampaignSeries
	for _, r := range rows {
		i, ok := index[r.Campaign]
		if !ok {
			i = len(series)
			index[r.Campaign] = i
			series = append(series, port.CampaignSeries{
				Campaign: r.Campaign,
				Label:    domain.CampaignLabel(r.Campaign),
			})
		}
		series[i].Points = append(series[i].Points, port.SeriesPoint{
			Date:    r.ReportStart,
			Results: r.Results,
		})
	}
	for i := range series {
		slices.SortStableFunc(series[i].Points, func(a, b port.SeriesPoint) int {
			return a.Date.Compare(b.Date)
		})
	}
	return series
}

// detailListing copies the filtered rows sorted by spend descending.
// The stable sort keeps ties in their original relative order.
func detailListing(rows []domain.Record) []domain.Record {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b domain.Record) int {
		switch {
		case a.Spend > b.Spend:
			return -1
		case a.Spend < b.Spend:
			return 1
		default:
			return 0
		}
	})
	return out
}
