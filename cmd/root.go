// Package cmd implements the expense-tracker CLI commands.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/config"
	"github.com/MOstrowka/ExpenseTracker/internal/ledger"
	"github.com/MOstrowka/ExpenseTracker/internal/store"
)

var (
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "expense-tracker",
	Short: "Personal expense tracker CLI",
	Long:  "Track personal expenses: add, list, update, delete, summarize, and export them.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory for the expense documents")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// dataDir resolves the data directory: flag, then config, then XDG default.
func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return config.DefaultDataDir()
}

// openLedger is the shared setup path used by all commands: load config,
// resolve document paths, and initialize the documents on first use.
func openLedger() (*ledger.Ledger, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	dir := dataDir(cfg)
	st := store.New(config.ExpensesPath(cfg, dir), config.BudgetPath(cfg, dir))
	if err := st.Init(); err != nil {
		return nil, cfg, err
	}
	log.Debug().Str("expenses", st.ExpensesPath()).Str("budget", st.BudgetPath()).Msg("documents resolved")

	return ledger.New(st), cfg, nil
}
