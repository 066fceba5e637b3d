package ledger

import (
	"fmt"
	"strings"
)

// ImportReason identifies why an import was rejected or only partially landed.
type ImportReason string

const (
	// ReasonMissingColumns means the candidate table lacks required columns.
	ReasonMissingColumns ImportReason = "missing_columns"
	// ReasonNoValidRows means the candidate table has no data rows.
	ReasonNoValidRows ImportReason = "no_valid_rows"
	// ReasonConversionError means every data row failed type coercion.
	ReasonConversionError ImportReason = "conversion_error"
	// ReasonWriteError means rows were appended in memory but the backing
	// file could not be rewritten.
	ReasonWriteError ImportReason = "write_error"
)

// ImportError reports a rejected import. For ReasonWriteError the in-memory
// append has already happened and stands; for every other reason the ledger
// is unchanged.
type ImportError struct {
	Reason  ImportReason
	Missing []string // populated for ReasonMissingColumns
	Err     error
}

func (e *ImportError) Error() string {
	switch e.Reason {
	case ReasonMissingColumns:
		return fmt.Sprintf("import rejected: missing required columns: %s", strings.Join(e.Missing, ", "))
	case ReasonNoValidRows:
		return "import rejected: no data rows in candidate table"
	case ReasonConversionError:
		return "import rejected: no rows survived type conversion"
	case ReasonWriteError:
		return fmt.Sprintf("import applied in memory but not persisted: %v", e.Err)
	}
	return fmt.Sprintf("import failed: %s", e.Reason)
}

func (e *ImportError) Unwrap() error { return e.Err }

// PersistError reports a failed rewrite of the backing file. The in-memory
// ledger keeps the rows that could not be written; Dirty reports the divergence.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
