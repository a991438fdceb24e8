package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
	"github.com/MOstrowka/ExpenseTracker/internal/report"
)

var (
	listCategory  string
	listStartDate string
	listEndDate   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, optionally filtered",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only expenses in this category")
	listCmd.Flags().StringVar(&listStartDate, "start-date", "", "Only expenses on or after this date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listEndDate, "end-date", "", "Only expenses on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	opts := report.FilterOptions{Category: listCategory}

	var err error
	if listStartDate != "" {
		if opts.Start, err = report.ParseBound(listStartDate, false); err != nil {
			return err
		}
	}
	if listEndDate != "" {
		if opts.End, err = report.ParseBound(listEndDate, true); err != nil {
			return err
		}
	}

	led, cfg, err := openLedger()
	if err != nil {
		return err
	}
	expenses, err := led.Expenses()
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses recorded.")
		return nil
	}

	filtered := report.Filter(expenses, opts)
	if len(filtered) == 0 {
		fmt.Println("No expenses match the given filters.")
		return nil
	}

	rows := make([][]string, 0, len(filtered)+2)
	for _, e := range filtered {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			cli.FormatDate(e.Date),
			cli.Truncate(e.Description, 30),
			cli.FormatAmount(e.Amount, cfg.Appearance.Currency),
			e.Category,
		})
	}
	rows = append(rows, cli.SeparatorRow)
	rows = append(rows, []string{
		"", "", fmt.Sprintf("%d expenses", len(filtered)),
		cli.FormatAmount(report.Total(filtered), cfg.Appearance.Currency), "",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Description", "Amount", "Category"},
		Rows:    rows,
		Align:   []int{cli.AlignRight, cli.AlignLeft, cli.AlignLeft, cli.AlignRight, cli.AlignLeft},
	}))
	return nil
}
