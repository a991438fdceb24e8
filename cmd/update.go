package cmd

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/ledger"
)

var (
	updateID          int64
	updateDescription string
	updateAmount      string
	updateCategory    string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing expense",
	Long: "Update fields of an existing expense. Only flags that are given are\n" +
		"changed, so an amount can be reset to 0 or a description to empty.\n" +
		"The expense date is refreshed to now on every update.",
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Int64Var(&updateID, "id", 0, "ID of the expense to update")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	updateCmd.Flags().StringVar(&updateAmount, "amount", "", "New amount")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "New category")
	_ = updateCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	var changes ledger.Changes
	if cmd.Flags().Changed("description") {
		changes.Description = &updateDescription
	}
	if cmd.Flags().Changed("amount") {
		amount, err := decimal.NewFromString(updateAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", updateAmount, err)
		}
		changes.Amount = &amount
	}
	if cmd.Flags().Changed("category") {
		changes.Category = &updateCategory
	}

	led, _, err := openLedger()
	if err != nil {
		return err
	}

	if _, err := led.Update(updateID, changes); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			fmt.Printf("No expense found with ID: %d\n", updateID)
			return nil
		}
		return err
	}

	fmt.Printf("Expense with ID %d updated successfully.\n", updateID)
	return nil
}
