package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// Source column headers as written by Meta Ads Manager (Spanish locale).
const (
	colCampaign      = "Nombre de la campaña"
	colSpend         = "Importe gastado (BOB)"
	colImpressions   = "Impresiones"
	colReach         = "Alcance"
	colResults       = "Resultados"
	colCostPerResult = "Coste por resultados"
	colReportStart   = "Inicio del informe"
	colReportEnd     = "Fin del informe"
	colEnd           = "Fin"
)

var requiredColumns = []string{
	colCampaign, colSpend, colImpressions, colReach, colResults,
	colCostPerResult, colReportStart, colReportEnd, colEnd,
}

// dateLayouts are tried in order when parsing date cells. Meta exports
// write ISO dates; the remaining layouts cover spreadsheet re-saves.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// normalize maps the raw table onto canonical records: headers are
// resolved to field indices, date cells are parsed, and CTR/CPM are
// derived. Rows are retained even when individual cells are missing or
// unparsable; only a missing column or a missing data section is fatal.
func normalize(path string, rows [][]string) ([]domain.Record, error) {
	if len(rows) == 0 {
		return nil, &port.LoadError{Path: path, Reason: "export file is empty"}
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, &port.LoadError{Path: path, Reason: fmt.Sprintf("required column %q is missing", name)}
		}
	}

	if len(rows) < 2 {
		return nil, &port.LoadError{Path: path, Reason: "export file has no data rows"}
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rec := domain.Record{
			Campaign:      cell(row, idx[colCampaign]),
			ReportStart:   parseDate(cell(row, idx[colReportStart])),
			ReportEnd:     parseDate(cell(row, idx[colReportEnd])),
			End:           parseDate(cell(row, idx[colEnd])),
			Spend:         parseAmount(cell(row, idx[colSpend])),
			Impressions:   parseCount(cell(row, idx[colImpressions])),
			Reach:         parseCount(cell(row, idx[colReach])),
			Results:       parseCount(cell(row, idx[colResults])),
			CostPerResult: parseAmount(cell(row, idx[colCostPerResult])),
		}
		rec.DeriveMetrics()
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, &port.LoadError{Path: path, Reason: "export file has no data rows"}
	}
	return records, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cell returns row[i], tolerating rows shorter than the header.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseAmount reads a monetary cell. Thousands separators are stripped;
// empty or unparsable cells yield 0 (the row itself is kept).
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCount reads a non-negative integer cell. Values written with a
// decimal point ("10.0") are accepted.
func parseCount(s string) int64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return int64(v)
}

// parseDate tries each known layout; unparsable cells yield a zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
