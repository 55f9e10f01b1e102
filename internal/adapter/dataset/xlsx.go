package dataset

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"adboard/internal/core/port"
)

// parseXLSX reads the first sheet of an XLSX export. Meta Ads Manager
// writes a single sheet with the same header row as the CSV export.
func parseXLSX(path string, raw []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &port.LoadError{Path: path, Reason: "workbook has no sheets"}
	}
	return f.GetRows(sheets[0])
}
