package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVParse(t *testing.T) {
	in := "Date,Branch,Product,Quantity,UnitPrice,Total\n" +
		"2024-01-15,Colombo,Milk,2,50,100\n" +
		"2024-01-16,Kandy,Bread,1,120,120\n"

	var p CSVParser
	tbl, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Branch", "Product", "Quantity", "UnitPrice", "Total"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Milk", tbl.Rows[0][2])
	assert.Equal(t, "120", tbl.Rows[1][5])
}

func TestCSVParseRaggedRows(t *testing.T) {
	in := "Date,Branch\n2024-01-15,Colombo,extra\n2024-01-16\n"

	var p CSVParser
	tbl, err := p.Parse(strings.NewReader(in))
	require.NoError(t, err, "ragged rows are kept for the ledger to judge")
	require.Len(t, tbl.Rows, 2)
	assert.Len(t, tbl.Rows[0], 3)
	assert.Len(t, tbl.Rows[1], 1)
}

func TestCSVParseEmpty(t *testing.T) {
	var p CSVParser
	tbl, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestXLSXParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	writeXLSXFixture(t, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var p XLSXParser
	tbl, err := p.Parse(f)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Branch", "Product", "Quantity", "UnitPrice", "Total"}, tbl.Columns)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Colombo", tbl.Rows[0][1])
}

func TestTableColumnIndex(t *testing.T) {
	tbl := Table{Columns: []string{"Date", "Branch", "Product"}}
	assert.Equal(t, 1, tbl.ColumnIndex("Branch"))
	assert.Equal(t, -1, tbl.ColumnIndex("Cashier"))
}

func TestTableCell(t *testing.T) {
	tbl := Table{Rows: [][]string{{"a", "b"}}}
	assert.Equal(t, "b", tbl.Cell(tbl.Rows[0], 1))
	assert.Equal(t, "", tbl.Cell(tbl.Rows[0], 5), "short rows read as empty")
	assert.Equal(t, "", tbl.Cell(tbl.Rows[0], -1))
}

func TestRegistryForFile(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, "csv", r.ForFile("import/Sales.CSV").Format())
	assert.Equal(t, "xlsx", r.ForFile("import/sales.xlsx").Format())
	assert.Nil(t, r.ForFile("import/sales.pdf"))
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestParseFileUnsupported(t *testing.T) {
	_, err := DefaultRegistry().ParseFile("sales.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("jan.csv", "Date,Branch\n")
	write("feb.xlsx", "stub")
	write("notes.txt", "ignore me")

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	names := []string{files[0].Name, files[1].Name}
	assert.Contains(t, names, "jan.csv")
	assert.Contains(t, names, "feb.xlsx")
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jan.csv"), []byte("Date\n"), 0o644))

	require.NoError(t, MarkProcessed(root, "jan.csv"))

	assert.NoFileExists(t, filepath.Join(dir, "jan.csv"))
	assert.FileExists(t, filepath.Join(root, "import", "processed", "jan.csv"))
}

func writeXLSXFixture(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Date", "Branch", "Product", "Quantity", "UnitPrice", "Total"},
		{"2024-01-15", "Colombo", "Milk", 2, 50, 100},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}
