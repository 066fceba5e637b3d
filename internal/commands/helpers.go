package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/salesview-dev/salesview/internal/config"
	"github.com/salesview-dev/salesview/internal/ledger"
)

// project bundles a resolved project root, its config and its opened ledger.
type project struct {
	root string
	cfg  *config.Config
	led  *ledger.Ledger
}

// openProject resolves dir, loads salesview.yaml and opens the backing file.
// A broken or missing backing file is a warning, not a failure: reports then
// run against an empty ledger, exactly as the user would expect from a fresh
// project.
func openProject(dir string) (*project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a salesview project (run 'salesview init' first): %w", err)
	}

	led, res := ledger.Open(filepath.Join(root, cfg.Data.File))
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "warning: sales data could not be loaded, starting empty: %v\n", res.Err)
	}
	if res.Dropped > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d invalid rows dropped while loading %s\n", res.Dropped, cfg.Data.File)
	}

	return &project{root: root, cfg: cfg, led: led}, nil
}

// renderTable prints rows as an aligned terminal table.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// parseDateFlag parses a --from/--to style flag value. Empty means unset.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := ledger.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w (expected YYYY-MM-DD)", name, err)
	}
	return t, nil
}

// parseRange parses and validates an optional from/to pair.
func parseRange(fromStr, toStr string) (from, to time.Time, err error) {
	from, err = parseDateFlag("from", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = parseDateFlag("to", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date %s is after end date %s", fromStr, toStr)
	}
	return from, to, nil
}
