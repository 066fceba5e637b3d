package importer

// Table is an untyped tabular payload parsed from a user-chosen file. The
// ledger consumes Tables during import; it never touches the source file.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of a named column, or -1 if absent.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value of a column in a row, or "" when the row is short.
func (t Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
