package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/ledger"
	"github.com/salesview-dev/salesview/internal/stats"
)

func newSummaryCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Dashboard overview of the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			if proj.led.IsEmpty() {
				fmt.Println("No sales data available. Import data with 'salesview import'.")
				return nil
			}

			cur := proj.cfg.Store.Currency
			total := stats.Sum(proj.led.Distribution(ledger.Filter{}))
			fmt.Printf("%s\n", proj.cfg.Store.Name)
			fmt.Printf("Total Sales (All Time): %s %s\n", cur, total.StringFixed(2))

			// Top product by revenue, not by volume.
			prefs := proj.led.Preferences(ledger.Filter{})
			top := prefs[0]
			for _, p := range prefs[1:] {
				if p.Revenue.GreaterThan(top.Revenue) {
					top = p
				}
			}
			fmt.Printf("Top Product: %s (%s %s)\n", top.Product, cur, top.Revenue.StringFixed(2))

			fmt.Printf("Transactions: %d  Branches: %d  Products: %d  Years: %v\n",
				proj.led.Len(), len(proj.led.Branches()), len(proj.led.Products()), proj.led.Years())
			if proj.led.Dirty() {
				fmt.Println("Note: unsaved changes in memory; the backing file is stale.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	return cmd
}
