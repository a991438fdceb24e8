package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/ledger"
)

var deleteID int64

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an expense by ID",
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().Int64Var(&deleteID, "id", 0, "ID of the expense to delete")
	_ = deleteCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, _ []string) error {
	led, _, err := openLedger()
	if err != nil {
		return err
	}

	if err := led.Delete(deleteID); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			fmt.Printf("No expense found with ID: %d\n", deleteID)
			return nil
		}
		return err
	}

	fmt.Printf("Expense with ID %d deleted successfully.\n", deleteID)
	return nil
}
