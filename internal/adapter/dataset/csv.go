package dataset

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// parseCSV reads the export as UTF-8 CSV. Rows may have ragged lengths;
// short rows are padded against the header later, so FieldsPerRecord is
// disabled. A UTF-8 BOM on the first cell is stripped.
func parseCSV(raw []byte) ([][]string, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	rd := csv.NewReader(bytes.NewReader(raw))
	rd.FieldsPerRecord = -1
	rd.TrimLeadingSpace = true

	rows, err := rd.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = strings.TrimSpace(rows[i][j])
		}
	}
	return rows, nil
}
