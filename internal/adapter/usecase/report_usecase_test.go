package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/core/port/mocks"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func record(campaign, start, end string, spend float64, impressions, results int64) domain.Record {
	r := domain.Record{
		Campaign:    campaign,
		ReportStart: day(start),
		ReportEnd:   day(end),
		Spend:       spend,
		Impressions: impressions,
		Results:     results,
	}
	r.DeriveMetrics()
	return r
}

func datasetWith(records ...domain.Record) *domain.Dataset {
	return &domain.Dataset{ID: "ds-1", Source: "export.csv", Records: records}
}

// TestBuildReportAggregates covers the two-campaign scenario: spends 100
// and 50, results 10 and 5 must sum to 150 and 15, with campaign A first
// in the detail listing.
func TestBuildReportAggregates(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(
		record("Mensajes: A desc1", "2025-06-09", "2025-06-15", 100, 2000, 10),
		record("Mensajes: B desc2", "2025-06-09", "2025-06-15", 50, 1000, 5),
	)
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	rep, err := svc.BuildReport(context.Background(), domain.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 150.0, rep.Summary.TotalSpend)
	assert.Equal(t, int64(15), rep.Summary.TotalResults)
	require.Len(t, rep.Detail, 2)
	assert.Equal(t, "Mensajes: A desc1", rep.Detail[0].Campaign, "detail sorted by spend desc")
	assert.Equal(t, "Mensajes: B desc2", rep.Detail[1].Campaign)
	assert.Equal(t, 2, rep.Meta.TotalRows)
	assert.Equal(t, 2, rep.Meta.FilteredRows)
}

func TestBuildReportEmptyFilterResult(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(record("Mensajes: A", "2025-06-09", "2025-06-15", 100, 2000, 10))
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	rep, err := svc.BuildReport(context.Background(), domain.Filter{
		From: day("2026-01-01"),
		To:   day("2026-12-31"),
	})
	require.ErrorIs(t, err, port.ErrEmptyResult)
	assert.Nil(t, rep, "no charts are produced for an empty result")
}

func TestBuildReportLoadErrorPropagates(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	lerr := &port.LoadError{Path: "export.csv", Reason: "export file not found"}
	repo.EXPECT().Load(mock.Anything).Return(&domain.Dataset{}, lerr)

	svc := NewReportUseCase(repo)
	_, err := svc.BuildReport(context.Background(), domain.Filter{})
	var got *port.LoadError
	require.ErrorAs(t, err, &got)
}

func TestBuildReportMeansSkipUndefinedRates(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(
		record("Mensajes: A", "2025-06-09", "2025-06-15", 100, 2000, 10), // CTR 0.5, CPM 50
		record("Mensajes: B", "2025-06-09", "2025-06-15", 50, 0, 5),      // undefined
	)
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	rep, err := svc.BuildReport(context.Background(), domain.Filter{})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, rep.Summary.AvgCTR, 1e-9, "only the finite row contributes")
	assert.InDelta(t, 50.0, rep.Summary.AvgCPM, 1e-9)
}

func TestBuildReportAllRatesUndefined(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(record("Mensajes: A", "2025-06-09", "2025-06-15", 100, 0, 10))
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	rep, err := svc.BuildReport(context.Background(), domain.Filter{})
	require.NoError(t, err, "undefined means must not raise")
	assert.True(t, math.IsNaN(rep.Summary.AvgCTR))
	assert.True(t, math.IsNaN(rep.Summary.AvgCPM))
}

func TestBuildReportTotalsSortedByResultsDesc(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(
		record("Mensajes: chico", "2025-06-09", "2025-06-15", 10, 1000, 2),
		record("Mensajes: grande", "2025-06-09", "2025-06-15", 5, 1000, 9),
		record("Mensajes: grande", "2025-06-16", "2025-06-22", 5, 1000, 4),
	)
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	rep, err := svc.BuildReport(context.Background(), domain.Filter{})
	require.NoError(t, err)

	require.Len(t, rep.Totals, 2)
	assert.Equal(t, "Mensajes: grande", rep.Totals[0].Campaign)
	assert.Equal(t, int64(13), rep.Totals[0].Results)
	assert.Equal(t, 10.0, rep.Totals[0].Spend)
}

func TestBuildReportSeriesChronological(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(
		record("Mensajes: A", "2025-06-16", "2025-06-22", 10, 1000, 4),
		record("Mensajes: B", "2025-06-09", "2025-06-15", 10, 1000, 1),
		record("Mensajes: A", "2025-06-09", "2025-06-15", 10, 1000, 2),
	)
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	rep, err := svc.BuildReport(context.Background(), domain.Filter{})
	require.NoError(t, err)

	require.Len(t, rep.Series, 2, "one series per distinct campaign")
	a := rep.Series[0]
	assert.Equal(t, "Mensajes: A", a.Campaign)
	require.Len(t, a.Points, 2)
	assert.True(t, a.Points[0].Date.Before(a.Points[1].Date), "points ordered chronologically")
	assert.Equal(t, int64(2), a.Points[0].Results)
}

func TestBuildReportDetailTiesKeepOrder(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(
		record("Mensajes: primero", "2025-06-09", "2025-06-15", 50, 1000, 1),
		record("Mensajes: segundo", "2025-06-09", "2025-06-15", 50, 1000, 2),
		record("Mensajes: caro", "2025-06-09", "2025-06-15", 90, 1000, 3),
	)
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	rep, err := svc.BuildReport(context.Background(), domain.Filter{})
	require.NoError(t, err)

	require.Len(t, rep.Detail, 3)
	assert.Equal(t, "Mensajes: caro", rep.Detail[0].Campaign)
	assert.Equal(t, "Mensajes: primero", rep.Detail[1].Campaign, "equal spends keep source order")
	assert.Equal(t, "Mensajes: segundo", rep.Detail[2].Campaign)
}

func TestFilterOptions(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	ds := datasetWith(
		record("Mensajes: A", "2025-06-09", "2025-06-15", 100, 2000, 10),
		record("Tráfico: B", "2025-06-16", "2025-07-08", 50, 1000, 5),
		record("Mensajes: A", "2025-06-16", "2025-06-22", 80, 1500, 8),
	)
	repo.EXPECT().Load(mock.Anything).Return(ds, nil)

	svc := NewReportUseCase(repo)
	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)

	require.Len(t, opts.Campaigns, 2)
	assert.Equal(t, "Mensajes: A", opts.Campaigns[0].Name)
	assert.Equal(t, "A", opts.Campaigns[0].Label)
	assert.Equal(t, day("2025-06-09"), opts.MinDate)
	assert.Equal(t, day("2025-07-08"), opts.MaxDate)
	assert.Equal(t, 3, opts.Rows)
}
