package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
	"github.com/MOstrowka/ExpenseTracker/internal/config"
	"github.com/MOstrowka/ExpenseTracker/internal/model"
	"github.com/MOstrowka/ExpenseTracker/internal/store"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	dir := dataDir(cfg)
	currency := cfg.Appearance.Currency
	defaultCategory := cfg.General.DefaultCategory
	budgetStr := ""

	validateAmount := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("not a valid amount: %q", s)
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where the expense and budget documents live.").
				Value(&dir),
			huh.NewSelect[string]().
				Title("Currency symbol").
				Options(
					huh.NewOption("Dollar ($)", "$"),
					huh.NewOption("Euro (€)", "€"),
					huh.NewOption("Pound (£)", "£"),
					huh.NewOption("Zloty (zł)", "zł"),
				).
				Value(&currency),
			huh.NewInput().
				Title("Default category").
				Placeholder(model.DefaultCategory).
				Value(&defaultCategory),
			huh.NewInput().
				Title("Monthly budget").
				Description("Leave blank to keep the current budget.").
				Validate(validateAmount).
				Value(&budgetStr),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	cfg.General.DataDir = dir
	cfg.General.DefaultCategory = strings.TrimSpace(defaultCategory)
	cfg.Appearance.Currency = currency
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	st := store.New(config.ExpensesPath(cfg, dir), config.BudgetPath(cfg, dir))
	if err := st.Init(); err != nil {
		return err
	}

	if budgetStr = strings.TrimSpace(budgetStr); budgetStr != "" {
		amount, err := decimal.NewFromString(budgetStr)
		if err != nil {
			return fmt.Errorf("invalid budget %q: %w", budgetStr, err)
		}
		if err := st.SaveBudget(amount); err != nil {
			return err
		}
		fmt.Printf("  Monthly budget set to %s\n", cli.FormatAmount(amount, currency))
	}

	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `expense-tracker setup` anytime to reconfigure.")
	return nil
}
