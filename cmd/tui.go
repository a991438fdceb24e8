package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	led, cfg, err := openLedger()
	if err != nil {
		return err
	}
	expenses, err := led.Expenses()
	if err != nil {
		return err
	}
	status, err := led.CheckBudget()
	if err != nil {
		return err
	}

	// Force TrueColor so background styling produces ANSI codes even when
	// lipgloss would otherwise fall back to the Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(expenses, status, cfg.Appearance.Currency)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
