package exporter

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/salesview-dev/salesview/internal/model"
)

// pdfMaxRows caps the tabular detail in a PDF summary; the totals line below
// the table still covers every exported transaction.
const pdfMaxRows = 20

// WritePDF writes a printable tabular summary of transactions to path.
func WritePDF(path, title, currency string, txns []model.Transaction) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{30, 50, 70, 30, 40, 40}
	headers := []string{"Date", "Branch", "Product", "Quantity", "Unit Price", "Total"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	shown := txns
	if len(shown) > pdfMaxRows {
		shown = shown[:pdfMaxRows]
	}
	for _, txn := range shown {
		pdf.CellFormat(widths[0], 7, txn.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, txn.Branch, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, txn.Product, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, txn.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, txn.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, txn.Total.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Total)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	summary := fmt.Sprintf("%d transactions, total %s %s", len(txns), currency, total.StringFixed(2))
	if len(txns) > pdfMaxRows {
		summary += fmt.Sprintf(" (first %d shown)", pdfMaxRows)
	}
	pdf.CellFormat(0, 8, summary, "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("saving PDF: %w", err)
	}
	return nil
}
