package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salesview-dev/salesview/internal/model"
)

// Header is the CSV header for sales_data.csv.
const Header = "Date,Branch,Product,Quantity,UnitPrice,Total"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colDate    = 0
	colBranch  = 1
	colProduct = 2
	colQty     = 3
	colPrice   = 4
	colTotal   = 5
)

// dateFormats are the calendar formats accepted on read. The first is
// canonical and the only one ever written.
var dateFormats = []string{
	dateFormat,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate parses a calendar date in any accepted format. The time component,
// if present, is discarded.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ReadTransactions reads all transactions from a sales_data.csv reader.
// Rows that fail validation are dropped and counted, never fatal; only a
// structurally malformed file returns an error.
func ReadTransactions(r io.Reader) (txns []model.Transaction, dropped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading sales CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, 0, nil
	}

	// Skip header row.
	for _, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			dropped++
			continue
		}
		txns = append(txns, txn)
	}
	return txns, dropped, nil
}

// WriteTransactions writes transactions to a sales_data.csv writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colBranch] = txn.Branch
	row[colProduct] = txn.Product
	row[colQty] = txn.Quantity.String()
	row[colPrice] = txn.UnitPrice.String()
	row[colTotal] = txn.Total.String()
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. All six fields
// must be present and well-typed; branch and product must be non-empty.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date: %w", err)
	}

	branch := strings.TrimSpace(record[colBranch])
	product := strings.TrimSpace(record[colProduct])
	if branch == "" {
		return model.Transaction{}, fmt.Errorf("empty branch")
	}
	if product == "" {
		return model.Transaction{}, fmt.Errorf("empty product")
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(record[colQty]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing quantity %q: %w", record[colQty], err)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[colPrice]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing unit price %q: %w", record[colPrice], err)
	}

	total, err := decimal.NewFromString(strings.TrimSpace(record[colTotal]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing total %q: %w", record[colTotal], err)
	}

	return model.Transaction{
		Date:      date,
		Branch:    branch,
		Product:   product,
		Quantity:  qty,
		UnitPrice: price,
		Total:     total,
	}, nil
}
