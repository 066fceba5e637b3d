package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesview-dev/salesview/internal/auditlog"
	"github.com/salesview-dev/salesview/internal/exporter"
	"github.com/salesview-dev/salesview/internal/ledger"
	"github.com/salesview-dev/salesview/internal/stats"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate sales reports",
	}
	reportCmd.AddCommand(
		newReportMonthlyCommand(),
		newReportPricesCommand(),
		newReportWeeklyCommand(),
		newReportPreferencesCommand(),
		newReportDistributionCommand(),
	)
	return reportCmd
}

func newReportMonthlyCommand() *cobra.Command {
	var dir, branch, monthStr string
	var year int

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Per-product sales for a branch, year and month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			// Filter input is validated here, before the ledger is queried.
			month, err := parseMonth(monthStr)
			if err != nil {
				return err
			}
			if year == 0 {
				years := proj.led.Years()
				year = years[len(years)-1]
			}

			rows := proj.led.MonthlySales(ledger.MonthlyFilter{
				Branch: branch,
				Year:   year,
				Month:  month,
			})
			if len(rows) == 0 {
				fmt.Println("No sales data found for the selected criteria.")
				return nil
			}

			cur := proj.cfg.Store.Currency
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{
					r.Product,
					r.Quantity.String(),
					cur + " " + r.UnitPrice.StringFixed(2),
					cur + " " + r.Total.StringFixed(2),
				})
			}
			renderTable(os.Stdout, []string{"Product", "Quantity", "Unit Price", "Total Sales"}, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&branch, "branch", "", "exact branch (default all branches)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default most recent in the ledger)")
	cmd.Flags().StringVar(&monthStr, "month", "", "month name or number (default all months)")

	return cmd
}

func newReportPricesCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "prices <product>",
		Short: "Unit price history for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			history := proj.led.PriceHistory(args[0])
			if len(history) == 0 {
				fmt.Printf("No price history found for %s.\n", args[0])
				return nil
			}

			cur := proj.cfg.Store.Currency
			out := make([][]string, 0, len(history))
			for _, p := range history {
				out = append(out, []string{p.Date.Format("2006-01-02"), cur + " " + p.UnitPrice.StringFixed(2)})
			}
			renderTable(os.Stdout, []string{"Date", "Price"}, out)

			if s, ok := stats.SummarizePrices(history); ok {
				fmt.Printf("Average: %s %s  Max: %s %s  Min: %s %s  Current: %s %s\n",
					cur, s.Average.StringFixed(2),
					cur, s.Max.StringFixed(2),
					cur, s.Min.StringFixed(2),
					cur, s.Current.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	return cmd
}

func newReportWeeklyCommand() *cobra.Command {
	var dir, branch, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Day-of-week sales totals for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			if fromStr == "" && toStr == "" {
				now := time.Now()
				toStr = now.Format("2006-01-02")
				fromStr = now.AddDate(0, 0, -7).Format("2006-01-02")
			}
			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}

			days := proj.led.WeeklySales(from, to, branch)

			cur := proj.cfg.Store.Currency
			out := make([][]string, 0, 7)
			for _, d := range days {
				out = append(out, []string{d.Day.String(), cur + " " + d.Total.StringFixed(2)})
			}
			renderTable(os.Stdout, []string{"Day of Week", "Total Sales"}, out)

			s := stats.SummarizeWeek(days)
			fmt.Printf("Total Revenue: %s %s  Average Daily Sales: %s %s (%d active days)\n",
				cur, s.TotalRevenue.StringFixed(2),
				cur, s.AverageDaily.StringFixed(2),
				s.ActiveDays)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&branch, "branch", "", "exact branch (default all branches)")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD (default 7 days ago)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD (default today)")

	return cmd
}

func newReportPreferencesCommand() *cobra.Command {
	var dir, branch, fromStr, toStr, outPath, user string

	cmd := &cobra.Command{
		Use:   "preferences",
		Short: "Products ranked by units sold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}

			prefs := proj.led.Preferences(ledger.Filter{From: from, To: to, Branch: branch})
			if len(prefs) == 0 {
				fmt.Println("No product preference data found for the selected criteria.")
				return nil
			}

			cur := proj.cfg.Store.Currency
			out := make([][]string, 0, len(prefs))
			for _, p := range prefs {
				out = append(out, []string{p.Product, p.UnitsSold.String(), cur + " " + p.Revenue.StringFixed(2)})
			}
			renderTable(os.Stdout, []string{"Product", "Units Sold", "Revenue"}, out)

			if outPath == "" {
				return nil
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()
			if err := exporter.WritePreferencesCSV(f, prefs); err != nil {
				return err
			}
			fmt.Printf("Report saved to %s\n", outPath)

			return auditlog.Append(proj.root, []auditlog.Entry{{
				Timestamp: time.Now(),
				User:      user,
				Action:    "export",
				Details:   fmt.Sprintf("preferences: %d products to %s", len(prefs), outPath),
			}})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&branch, "branch", "", "exact branch (default all branches)")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD")
	cmd.Flags().StringVar(&outPath, "out", "", "also write the report as CSV to this path")
	cmd.Flags().StringVar(&user, "user", "admin", "user recorded in the audit log")

	return cmd
}

func newReportDistributionCommand() *cobra.Command {
	var dir, branch, fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Distribution statistics over transaction totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := openProject(dir)
			if err != nil {
				return err
			}

			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}

			totals := proj.led.Distribution(ledger.Filter{From: from, To: to, Branch: branch})
			s, ok := stats.Describe(totals)
			if !ok {
				fmt.Println("No sales distribution data found for the selected criteria.")
				return nil
			}

			cur := proj.cfg.Store.Currency
			renderTable(os.Stdout, []string{"Statistic", "Value"}, [][]string{
				{"Transactions", strconv.Itoa(s.Count)},
				{"Mean", cur + " " + s.Mean.StringFixed(2)},
				{"Median", cur + " " + s.Median.StringFixed(2)},
				{"Mode", cur + " " + s.Mode.StringFixed(2)},
				{"Min", cur + " " + s.Min.StringFixed(2)},
				{"Max", cur + " " + s.Max.StringFixed(2)},
				{"Std Dev", cur + " " + s.StdDev.StringFixed(2)},
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "project directory")
	cmd.Flags().StringVar(&branch, "branch", "", "exact branch (default all branches)")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD")

	return cmd
}

// parseMonth accepts a month number ("1".."12") or an English month name.
// Empty input means no month filter.
func parseMonth(s string) (time.Month, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid --month %d (expected 1-12)", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid --month %q (expected a month name or 1-12)", s)
}
