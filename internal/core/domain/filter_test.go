package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleRecords() []Record {
	mk := func(campaign, start, end string, spend float64, results int64) Record {
		r := Record{
			Campaign:    campaign,
			ReportStart: day(start),
			ReportEnd:   day(end),
			Spend:       spend,
			Impressions: 1000,
			Results:     results,
		}
		r.DeriveMetrics()
		return r
	}
	return []Record{
		mk("Mensajes: A", "2025-06-09", "2025-06-15", 100, 10),
		mk("Mensajes: B", "2025-06-09", "2025-06-15", 50, 5),
		mk("Mensajes: A", "2025-06-16", "2025-06-22", 80, 8),
		mk("Tráfico: C", "2025-07-01", "2025-07-08", 30, 2),
	}
}

func TestFilterMatchesCampaignAndDates(t *testing.T) {
	records := sampleRecords()
	f := Filter{
		Campaigns: []string{"Mensajes: A"},
		From:      day("2025-06-09"),
		To:        day("2025-06-15"),
	}

	got := f.Apply(records)
	require.Len(t, got, 1)
	assert.Equal(t, "Mensajes: A", got[0].Campaign)
	assert.Equal(t, 100.0, got[0].Spend)
}

func TestFilterEmptySelectionMeansAll(t *testing.T) {
	records := sampleRecords()
	got := Filter{}.Apply(records)
	assert.Len(t, got, len(records))
}

func TestFilterIdempotent(t *testing.T) {
	records := sampleRecords()
	f := Filter{Campaigns: []string{"Mensajes: A", "Mensajes: B"}, To: day("2025-06-22")}

	once := f.Apply(records)
	twice := f.Apply(once)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	records := sampleRecords()
	before := make([]Record, len(records))
	copy(before, records)

	_ = Filter{Campaigns: []string{"Mensajes: B"}}.Apply(records)
	assert.Equal(t, before, records)
}

func TestFilterSumConsistency(t *testing.T) {
	// Aggregates over the filtered slice must equal aggregates over the
	// matching subset of the source slice.
	records := sampleRecords()
	f := Filter{Campaigns: []string{"Mensajes: A"}}

	var want float64
	for _, r := range records {
		if f.Matches(r) {
			want += r.Spend
		}
	}
	var got float64
	for _, r := range f.Apply(records) {
		got += r.Spend
	}
	assert.Equal(t, want, got)
}

func TestFilterExcludesOutOfRange(t *testing.T) {
	records := sampleRecords()
	f := Filter{From: day("2026-01-01"), To: day("2026-12-31")}
	assert.Empty(t, f.Apply(records))
}
