package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "salesview",
		Short:   "Retail sales reporting over a flat-file ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newLoginCommand(),
		newImportCommand(),
		newReportCommand(),
		newSummaryCommand(),
		newExportCommand(),
		newBranchesCommand(),
		newProductsCommand(),
		newAuditCommand(),
	)

	return rootCmd
}
