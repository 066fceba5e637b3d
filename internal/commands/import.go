package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/auditlog"
	"github.com/salesview-dev/salesview/internal/gitops"
	"github.com/salesview-dev/salesview/internal/importer"
	"github.com/salesview-dev/salesview/internal/ledger"
)

func newImportCommand() *cobra.Command {
	var dir string
	var user string
	var scan bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import sales records from a CSV or Excel file",
		Long: `Import appends records from a spreadsheet to the sales ledger. The file
must carry the columns Date, Branch, Product, Quantity, UnitPrice and Total;
rows that fail validation are dropped and reported. With --scan, every
importable file waiting in import/ is consumed and archived.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scan == (len(args) == 1) {
				return fmt.Errorf("provide either a file argument or --scan")
			}

			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			if !scan {
				return importFile(proj, user, args[0], false)
			}

			files, err := importer.Scan(proj.root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("No importable files in import/")
				return nil
			}
			for _, f := range files {
				if err := importFile(proj, user, f.Path, true); err != nil {
					return fmt.Errorf("%s: %w", f.Name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "admin", "user recorded in the audit log")
	cmd.Flags().BoolVar(&scan, "scan", false, "import every file waiting in import/")

	return cmd
}

func importFile(proj *project, user, path string, archive bool) error {
	tbl, err := importer.DefaultRegistry().ParseFile(path)
	if err != nil {
		return err
	}

	res, err := proj.led.Import(tbl)
	if err != nil {
		var impErr *ledger.ImportError
		if errors.As(err, &impErr) && impErr.Reason == ledger.ReasonWriteError {
			// The rows are in memory but not on disk; tell the user
			// rather than silently losing the distinction.
			fmt.Fprintf(os.Stderr, "warning: %v\n", impErr)
		} else {
			return err
		}
	}

	fmt.Printf("Imported %d records from %s", res.Added, filepath.Base(path))
	if res.Dropped > 0 {
		fmt.Printf(" (%d invalid rows dropped)", res.Dropped)
	}
	fmt.Println()

	if logErr := auditlog.Append(proj.root, []auditlog.Entry{{
		Timestamp: time.Now(),
		User:      user,
		Action:    "import",
		Details:   fmt.Sprintf("%s: %d added, %d dropped", filepath.Base(path), res.Added, res.Dropped),
	}}); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log: %v\n", logErr)
	}

	if archive {
		if err := importer.MarkProcessed(proj.root, filepath.Base(path)); err != nil {
			return err
		}
	}

	if proj.cfg.Git.AutoCommit && gitops.IsRepo(proj.root) && !proj.led.Dirty() {
		msg := fmt.Sprintf("import: %d rows from %s", res.Added, filepath.Base(path))
		if _, err := gitops.CommitAll(proj.root, msg, proj.cfg.Git.AuthorName, proj.cfg.Git.AuthorEmail); err != nil {
			fmt.Fprintf(os.Stderr, "warning: git commit: %v\n", err)
		}
	}

	return nil
}
