package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
	"github.com/MOstrowka/ExpenseTracker/internal/report"
)

var (
	summaryMonth      int
	summaryByCategory bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total spend, overall or for one month",
	Long: "Show the total of all expenses. With --month, only expenses from that\n" +
		"month of the current year are counted.",
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryMonth, "month", 0, "Month number 1-12, current year")
	summaryCmd.Flags().BoolVar(&summaryByCategory, "by-category", false, "Break the total down by category")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	if summaryMonth < 0 || summaryMonth > 12 {
		return fmt.Errorf("invalid month %d: must be 1-12", summaryMonth)
	}

	led, cfg, err := openLedger()
	if err != nil {
		return err
	}
	expenses, err := led.Expenses()
	if err != nil {
		return err
	}

	now := time.Now()
	scoped := expenses
	title := "SUMMARY  All time"
	if summaryMonth != 0 {
		month := time.Month(summaryMonth)
		title = fmt.Sprintf("SUMMARY  %s %d", month, now.Year())
		scoped = report.InMonth(expenses, month, now)
	}

	sum := report.Summarize(scoped)

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Expenses", fmt.Sprintf("%d", sum.Count)},
			{"Total", cli.FormatAmount(sum.Total, cfg.Appearance.Currency)},
		},
	}))

	if summaryByCategory && sum.Count > 0 {
		categories := report.ByCategory(scoped)
		maxTotal, _ := categories[0].Total.Float64()

		rows := make([][]string, 0, len(categories))
		for _, cs := range categories {
			total, _ := cs.Total.Float64()
			rows = append(rows, []string{
				cs.Category,
				fmt.Sprintf("%d", cs.Count),
				cli.FormatAmount(cs.Total, cfg.Appearance.Currency),
				cli.RenderHorizontalBar(total, maxTotal, 20),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By Category",
			Headers: []string{"Category", "Count", "Total", ""},
			Rows:    rows,
			Align:   []int{cli.AlignLeft, cli.AlignRight, cli.AlignRight, cli.AlignLeft},
		}))
	}
	return nil
}
