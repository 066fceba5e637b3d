package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/auditlog"
)

func newAuditCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the import/export audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			entries, err := auditlog.Read(root)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Audit log is empty.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Timestamp.Format(time.RFC3339),
					e.User,
					e.Action,
					e.Details,
				})
			}
			renderTable(os.Stdout, []string{"Time", "User", "Action", "Details"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	return cmd
}
