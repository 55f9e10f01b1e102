package domain

import (
	"math"
	"strings"
	"time"
)

// Record is one row of a Meta Ads Manager export: one campaign's
// performance over a single reporting period. Campaign names are not
// unique across records; a campaign that ran for several periods
// contributes one record per period.
type Record struct {
	Campaign      string
	ReportStart   time.Time
	ReportEnd     time.Time
	End           time.Time
	Spend         float64
	Impressions   int64
	Reach         int64
	Results       int64
	CostPerResult float64

	// CTR and CPM are derived at load time from Results, Spend and
	// Impressions and are never edited independently of them. Both are
	// NaN when Impressions is zero.
	CTR float64
	CPM float64
}

// DeriveMetrics recomputes CTR (results per hundred impressions) and CPM
// (spend per thousand impressions) from the source fields.
func (r *Record) DeriveMetrics() {
	if r.Impressions == 0 {
		r.CTR = math.NaN()
		r.CPM = math.NaN()
		return
	}
	r.CTR = float64(r.Results) / float64(r.Impressions) * 100
	r.CPM = r.Spend / float64(r.Impressions) * 1000
}

// CampaignLabel returns the descriptive part of a campaign name: the
// substring after the last colon, trimmed. Meta campaign names carry a
// structured prefix the dashboard hides.
func CampaignLabel(name string) string {
	if i := strings.LastIndex(name, ":"); i >= 0 {
		return strings.TrimSpace(name[i+1:])
	}
	return strings.TrimSpace(name)
}
