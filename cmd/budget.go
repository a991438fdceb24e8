package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
)

var setBudgetAmount string

var setBudgetCmd = &cobra.Command{
	Use:   "set-budget",
	Short: "Set the monthly budget",
	RunE:  runSetBudget,
}

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show budget status",
	RunE:  runBudget,
}

func init() {
	setBudgetCmd.Flags().StringVar(&setBudgetAmount, "amount", "", "Budget amount")
	_ = setBudgetCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(setBudgetCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runSetBudget(_ *cobra.Command, _ []string) error {
	amount, err := decimal.NewFromString(setBudgetAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", setBudgetAmount, err)
	}

	led, cfg, err := openLedger()
	if err != nil {
		return err
	}
	if err := led.SetBudget(amount); err != nil {
		return err
	}

	fmt.Printf("Monthly budget set to %s\n", cli.FormatAmount(amount, cfg.Appearance.Currency))
	return nil
}

func runBudget(_ *cobra.Command, _ []string) error {
	led, cfg, err := openLedger()
	if err != nil {
		return err
	}
	status, err := led.CheckBudget()
	if err != nil {
		return err
	}

	currency := cfg.Appearance.Currency
	if !status.Set {
		fmt.Println("No budget set. Use `expense-tracker set-budget --amount <value>`.")
		fmt.Printf("All-time spend: %s\n", cli.FormatAmount(status.Spent, currency))
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Monthly budget", cli.FormatAmount(status.Budget, currency)},
			{"Spent (all time)", cli.FormatAmount(status.Spent, currency)},
			{"Remaining", cli.FormatAmount(status.Remaining(), currency)},
		},
	}))

	fmt.Printf("  %s %s used\n",
		cli.RenderProgressBar(status.UsedFraction(), 30),
		cli.FormatPercent(status.UsedFraction()))

	if status.Exceeded {
		fmt.Println(cli.RenderWarning("Budget exceeded"))
	}
	fmt.Println()
	return nil
}
