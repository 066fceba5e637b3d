package importer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser parses comma-delimited spreadsheet exports.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV and returns its header row plus data rows. Rows are not
// validated here; column and type checks happen at import time.
func (p *CSVParser) Parse(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are dropped later, not here

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return Table{}, nil
	}
	return Table{Columns: records[0], Rows: records[1:]}, nil
}
