package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/salesview-dev/salesview/internal/model"
)

const sheetName = "Sales"

// WriteXLSX writes transactions to an Excel workbook at path.
func WriteXLSX(path string, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := []interface{}{"Date", "Branch", "Product", "Quantity", "UnitPrice", "Total"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		qty, _ := txn.Quantity.Float64()
		price, _ := txn.UnitPrice.Float64()
		total, _ := txn.Total.Float64()
		row := []interface{}{
			txn.Date.Format("2006-01-02"),
			txn.Branch,
			txn.Product,
			qty,
			price,
			total,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
