package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
)

var (
	addDescription string
	addAmount      string
	addCategory    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new expense",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "Description of the expense")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Amount of the expense")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category of the expense")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	amount, err := decimal.NewFromString(addAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", addAmount, err)
	}

	led, cfg, err := openLedger()
	if err != nil {
		return err
	}

	category := addCategory
	if category == "" {
		category = cfg.General.DefaultCategory
	}

	expense, status, err := led.Add(addDescription, amount, category)
	if err != nil {
		return err
	}

	fmt.Printf("Expense added successfully (ID: %d)\n", expense.ID)

	if status.Exceeded {
		fmt.Println(cli.RenderWarning(fmt.Sprintf(
			"Budget exceeded: spent %s of %s",
			cli.FormatAmount(status.Spent, cfg.Appearance.Currency),
			cli.FormatAmount(status.Budget, cfg.Appearance.Currency),
		)))
	}
	return nil
}
