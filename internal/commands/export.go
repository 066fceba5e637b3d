package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/auditlog"
	"github.com/salesview-dev/salesview/internal/exporter"
	"github.com/salesview-dev/salesview/internal/ledger"
)

func newExportCommand() *cobra.Command {
	var dir, branch, product, fromStr, toStr, outPath, user string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered sales data to CSV, Excel or PDF",
		Long: `Export writes the transactions matching the given filters to the file
named by --out. The format follows the file extension: .csv, .xlsx or .pdf.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}

			rows := proj.led.Rows(ledger.ExportFilter{
				Filter:  ledger.Filter{From: from, To: to, Branch: branch},
				Product: product,
			})
			if len(rows) == 0 {
				fmt.Println("No data found for the selected filters.")
				return nil
			}

			switch filepath.Ext(outPath) {
			case ".csv":
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				if err := exporter.WriteCSV(f, rows); err != nil {
					return err
				}
			case ".xlsx":
				if err := exporter.WriteXLSX(outPath, rows); err != nil {
					return err
				}
			case ".pdf":
				title := fmt.Sprintf("%s Sales Export", proj.cfg.Store.Name)
				if err := exporter.WritePDF(outPath, title, proj.cfg.Store.Currency, rows); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported export format %q (expected .csv, .xlsx or .pdf)", filepath.Ext(outPath))
			}

			fmt.Printf("Exported %d records to %s\n", len(rows), outPath)

			return auditlog.Append(proj.root, []auditlog.Entry{{
				Timestamp: time.Now(),
				User:      user,
				Action:    "export",
				Details:   fmt.Sprintf("%d rows to %s", len(rows), outPath),
			}})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&branch, "branch", "", "exact branch (default all branches)")
	cmd.Flags().StringVar(&product, "product", "", "exact product (default all products)")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD")
	cmd.Flags().StringVar(&outPath, "out", "", "output file path (required)")
	cmd.Flags().StringVar(&user, "user", "admin", "user recorded in the audit log")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
