package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/config"
	"github.com/MOstrowka/ExpenseTracker/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dir := dataDir(cfg)
	fmt.Println("  [General]")
	fmt.Printf("    Data directory:   %s\n", dir)
	defaultCategory := cfg.General.DefaultCategory
	if defaultCategory == "" {
		defaultCategory = model.DefaultCategory
	}
	fmt.Printf("    Default category: %s\n", defaultCategory)
	fmt.Println()

	fmt.Println("  [Files]")
	fmt.Printf("    Expenses: %s\n", config.ExpensesPath(cfg, dir))
	fmt.Printf("    Budget:   %s\n", config.BudgetPath(cfg, dir))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Currency: %s\n", cfg.Appearance.Currency)
	fmt.Println()

	fmt.Println("  Run `expense-tracker setup` to reconfigure.")
	return nil
}
