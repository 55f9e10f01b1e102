package domain

import "time"

// Dataset is a cleaned snapshot of one export file. It is immutable after
// load: filtering always produces a new slice and never touches Records.
// ID identifies the snapshot; loaders assign a fresh ID whenever the file
// content changes and reuse the previous snapshot otherwise.
type Dataset struct {
	ID      string
	Source  string
	Records []Record
}

// Empty reports whether the dataset holds no records.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Records) == 0
}

// Campaigns returns the distinct campaign names in first-seen order.
func (d *Dataset) Campaigns() []string {
	seen := make(map[string]struct{}, len(d.Records))
	var names []string
	for _, r := range d.Records {
		if _, ok := seen[r.Campaign]; ok {
			continue
		}
		seen[r.Campaign] = struct{}{}
		names = append(names, r.Campaign)
	}
	return names
}

// DateBounds returns the earliest report start and the latest report end
// across all records. Zero dates (rows with missing date cells) do not
// contribute. Both returns are zero when no record carries dates.
func (d *Dataset) DateBounds() (min, max time.Time) {
	for _, r := range d.Records {
		if !r.ReportStart.IsZero() && (min.IsZero() || r.ReportStart.Before(min)) {
			min = r.ReportStart
		}
		if !r.ReportEnd.IsZero() && r.ReportEnd.After(max) {
			max = r.ReportEnd
		}
	}
	return min, max
}
