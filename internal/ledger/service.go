package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/salesview-dev/salesview/internal/importer"
	"github.com/salesview-dev/salesview/internal/model"
)

// RequiredColumns are the columns a candidate table must carry, in backing-file
// order.
var RequiredColumns = []string{"Date", "Branch", "Product", "Quantity", "UnitPrice", "Total"}

// Ledger owns the in-memory transaction table and its backing file. It is
// mutated only by Import; everything else is read-only. Import holds the write
// lock across the whole read-modify-persist sequence, so queries may run
// concurrently with each other but never observe a half-applied import.
type Ledger struct {
	path string

	mu    sync.RWMutex
	txns  []model.Transaction
	dirty bool // memory and disk diverged after a failed persist
}

// LoadResult describes the outcome of opening the backing file.
type LoadResult struct {
	Loaded  int
	Dropped int   // rows discarded during load for failing validation
	Err     error // non-nil when the file was present but unreadable
}

// ImportResult describes the outcome of a successful (or partially persisted)
// import.
type ImportResult struct {
	Added   int
	Dropped int // candidate rows discarded for failing coercion
}

// Open loads the ledger from path. An absent file yields an empty ledger; an
// unparsable file yields an empty ledger with the load error recorded in the
// result. Open never fails.
func Open(path string) (*Ledger, LoadResult) {
	l := &Ledger{path: path}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, LoadResult{}
	}
	if err != nil {
		return l, LoadResult{Err: fmt.Errorf("opening %s: %w", path, err)}
	}
	defer f.Close()

	txns, dropped, err := ReadTransactions(f)
	if err != nil {
		return l, LoadResult{Err: fmt.Errorf("loading %s: %w", path, err)}
	}

	l.txns = txns
	return l, LoadResult{Loaded: len(txns), Dropped: dropped}
}

// Path returns the backing file path.
func (l *Ledger) Path() string { return l.path }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.txns)
}

// IsEmpty reports whether the ledger has no transactions.
func (l *Ledger) IsEmpty() bool { return l.Len() == 0 }

// Dirty reports whether the in-memory table holds rows the backing file does
// not, after a failed persist. A successful Save clears it.
func (l *Ledger) Dirty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dirty
}

// Import validates a candidate table, coerces its rows, appends the survivors
// and rewrites the backing file. Validation failures leave the ledger
// unchanged; a persist failure leaves the appended rows in memory and marks
// the ledger dirty.
func (l *Ledger) Import(tbl importer.Table) (ImportResult, error) {
	if missing := missingColumns(tbl); len(missing) > 0 {
		return ImportResult{}, &ImportError{Reason: ReasonMissingColumns, Missing: missing}
	}

	if len(tbl.Rows) == 0 {
		return ImportResult{}, &ImportError{Reason: ReasonNoValidRows}
	}

	txns, dropped := coerceRows(tbl)
	if len(txns) == 0 {
		return ImportResult{Dropped: dropped}, &ImportError{Reason: ReasonConversionError}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.txns = append(l.txns, txns...)
	res := ImportResult{Added: len(txns), Dropped: dropped}

	if err := l.save(); err != nil {
		l.dirty = true
		return res, &ImportError{Reason: ReasonWriteError, Err: err}
	}
	l.dirty = false
	return res, nil
}

// Save rewrites the backing file from the in-memory table.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.save(); err != nil {
		l.dirty = true
		return err
	}
	l.dirty = false
	return nil
}

// save writes the whole table to a temp file and renames it into place, so a
// failed write never truncates the previous backing file. Callers hold l.mu.
func (l *Ledger) save() error {
	var buf bytes.Buffer
	if err := WriteTransactions(&buf, l.txns); err != nil {
		return &PersistError{Path: l.path, Err: err}
	}

	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp*")
	if err != nil {
		return &PersistError{Path: l.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistError{Path: l.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistError{Path: l.path, Err: err}
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return &PersistError{Path: l.path, Err: err}
	}
	return nil
}

func missingColumns(tbl importer.Table) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if tbl.ColumnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	return missing
}

// coerceRows converts candidate rows to transactions via the backing-file
// codec, dropping rows that fail. Column order in the candidate table is
// arbitrary; only names matter.
func coerceRows(tbl importer.Table) (txns []model.Transaction, dropped int) {
	idx := make([]int, len(RequiredColumns))
	for i, col := range RequiredColumns {
		idx[i] = tbl.ColumnIndex(col)
	}

	for _, row := range tbl.Rows {
		if blankRow(row) {
			dropped++
			continue
		}
		rec := make([]string, len(RequiredColumns))
		for i, col := range idx {
			rec[i] = tbl.Cell(row, col)
		}
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			dropped++
			continue
		}
		txns = append(txns, txn)
	}
	return txns, dropped
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
