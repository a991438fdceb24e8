// Package config loads and saves the expense-tracker TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all expense-tracker configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Files      FilesConfig      `toml:"files"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir         string `toml:"data_dir,omitempty"`
	DefaultCategory string `toml:"default_category,omitempty"`
}

// FilesConfig overrides the individual document paths. When set, these win
// over the data directory.
type FilesConfig struct {
	Expenses string `toml:"expenses,omitempty"`
	Budget   string `toml:"budget,omitempty"`
}

// AppearanceConfig holds display settings.
type AppearanceConfig struct {
	Currency string `toml:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Currency: "$",
		},
	}
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "expense-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "expense-tracker")
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "expense-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "expense-tracker")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory is loaded first so the
// EXPENSES_FILE and BUDGET_FILE overrides are visible.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ExpensesPath resolves the expenses document path. Precedence:
// EXPENSES_FILE env var, [files] override, then dataDir.
func ExpensesPath(cfg Config, dataDir string) string {
	if p := os.Getenv("EXPENSES_FILE"); p != "" {
		return p
	}
	if cfg.Files.Expenses != "" {
		return cfg.Files.Expenses
	}
	return filepath.Join(dataDir, "expenses.json")
}

// BudgetPath resolves the budget document path. Precedence mirrors
// ExpensesPath with the BUDGET_FILE env var.
func BudgetPath(cfg Config, dataDir string) string {
	if p := os.Getenv("BUDGET_FILE"); p != "" {
		return p
	}
	if cfg.Files.Budget != "" {
		return cfg.Files.Budget
	}
	return filepath.Join(dataDir, "budget.json")
}
