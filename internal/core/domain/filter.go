package domain

import (
	"slices"
	"time"
)

// Filter selects the records shown by one render of the dashboard. A
// record passes when its campaign is in Campaigns, its report start is
// not before From and its report end is not after To. An empty campaign
// list selects every campaign; a zero From or To leaves that side of the
// date range unbounded.
type Filter struct {
	Campaigns []string
	From      time.Time
	To        time.Time
}

// Matches reports whether the record passes the filter.
func (f Filter) Matches(r Record) bool {
	if len(f.Campaigns) > 0 && !slices.Contains(f.Campaigns, r.Campaign) {
		return false
	}
	if !f.From.IsZero() && r.ReportStart.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.ReportEnd.After(f.To) {
		return false
	}
	return true
}

// Apply returns the matching records in their original order. The input
// slice is never mutated; applying the same filter to its own output
// returns an equal slice.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
