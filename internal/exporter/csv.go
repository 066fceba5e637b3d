// Package exporter renders ledger query results to spreadsheet and PDF files.
// It only consumes; it never touches the backing file.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/salesview-dev/salesview/internal/ledger"
	"github.com/salesview-dev/salesview/internal/model"
)

// WriteCSV writes transactions in the backing-file format, header included.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	return ledger.WriteTransactions(w, txns)
}

// WritePreferencesCSV writes a product preference report.
func WritePreferencesCSV(w io.Writer, prefs []model.Preference) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Product", "UnitsSold", "Revenue"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, p := range prefs {
		row := []string{p.Product, p.UnitsSold.String(), p.Revenue.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
