package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveMetrics(t *testing.T) {
	r := Record{Spend: 100, Impressions: 2000, Results: 10}
	r.DeriveMetrics()

	assert.InDelta(t, 0.5, r.CTR, 1e-9, "CTR = results/impressions*100")
	assert.InDelta(t, 50.0, r.CPM, 1e-9, "CPM = spend/impressions*1000")
}

func TestDeriveMetricsZeroImpressions(t *testing.T) {
	r := Record{Spend: 100, Impressions: 0, Results: 10}
	r.DeriveMetrics()

	assert.True(t, math.IsNaN(r.CTR), "CTR must be undefined, not a panic")
	assert.True(t, math.IsNaN(r.CPM), "CPM must be undefined, not a panic")
}

func TestDeriveMetricsRecomputes(t *testing.T) {
	r := Record{Spend: 100, Impressions: 1000, Results: 5}
	r.DeriveMetrics()
	first := r.CTR

	// Derived fields always follow the source fields.
	r.Results = 10
	r.DeriveMetrics()
	assert.Equal(t, first*2, r.CTR)
}

func TestCampaignLabel(t *testing.T) {
	cases := map[string]string{
		"Mensajes: Promo Junio":          "Promo Junio",
		"Tráfico: ventas: Cierre julio":  "Cierre julio",
		"Sin prefijo":                    "Sin prefijo",
		"Conversiones:   con espacios  ": "con espacios",
	}
	for in, want := range cases {
		assert.Equal(t, want, CampaignLabel(in), "label of %q", in)
	}
}
