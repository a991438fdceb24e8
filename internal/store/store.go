// Package store persists the expense collection and the budget value as two
// independent flat JSON documents.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/MOstrowka/ExpenseTracker/internal/model"
)

// budgetDocument is the on-disk shape of the budget file.
type budgetDocument struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

// Store reads and writes the two persisted documents. Paths are injected at
// construction so tests and parallel ledgers can point at their own files.
type Store struct {
	expensesPath string
	budgetPath   string
}

// New creates a store over the given document paths.
func New(expensesPath, budgetPath string) *Store {
	return &Store{expensesPath: expensesPath, budgetPath: budgetPath}
}

// ExpensesPath returns the path of the expenses document.
func (s *Store) ExpensesPath() string { return s.expensesPath }

// BudgetPath returns the path of the budget document.
func (s *Store) BudgetPath() string { return s.budgetPath }

// Init creates both documents with empty/default content when absent, so
// subsequent loads never hit the soft-fail path under normal operation.
func (s *Store) Init() error {
	for _, p := range []string{s.expensesPath, s.budgetPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}
	if _, err := os.Stat(s.expensesPath); os.IsNotExist(err) {
		if err := s.SaveExpenses(nil); err != nil {
			return err
		}
	}
	if _, err := os.Stat(s.budgetPath); os.IsNotExist(err) {
		if err := s.SaveBudget(decimal.Zero); err != nil {
			return err
		}
	}
	return nil
}

// LoadExpenses reads the expense collection. A missing or unparseable
// document yields an empty collection rather than an error.
func (s *Store) LoadExpenses() ([]model.Expense, error) {
	data, err := os.ReadFile(s.expensesPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", s.expensesPath).Msg("expenses document missing, treating as empty")
			return nil, nil
		}
		return nil, fmt.Errorf("reading expenses: %w", err)
	}

	var expenses []model.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		log.Warn().Str("path", s.expensesPath).Err(err).
			Msg("expenses document unreadable, treating as empty")
		return nil, nil
	}
	log.Debug().Int("count", len(expenses)).Msg("loaded expenses")
	return expenses, nil
}

// SaveExpenses overwrites the expenses document with the full collection.
func (s *Store) SaveExpenses(expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	data, err := json.MarshalIndent(expenses, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}
	if err := os.WriteFile(s.expensesPath, data, 0o600); err != nil {
		return fmt.Errorf("writing expenses: %w", err)
	}
	log.Debug().Int("count", len(expenses)).Msg("saved expenses")
	return nil
}

// LoadBudget reads the stored monthly budget, defaulting to zero when the
// document is missing or unparseable.
func (s *Store) LoadBudget() (decimal.Decimal, error) {
	data, err := os.ReadFile(s.budgetPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", s.budgetPath).Msg("budget document missing, using default")
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("reading budget: %w", err)
	}

	var doc budgetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Str("path", s.budgetPath).Err(err).
			Msg("budget document unreadable, using default")
		return decimal.Zero, nil
	}
	return doc.MonthlyBudget, nil
}

// SaveBudget overwrites the budget document.
func (s *Store) SaveBudget(amount decimal.Decimal) error {
	data, err := json.MarshalIndent(budgetDocument{MonthlyBudget: amount}, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding budget: %w", err)
	}
	if err := os.WriteFile(s.budgetPath, data, 0o600); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}
	log.Debug().Str("budget", amount.String()).Msg("saved budget")
	return nil
}
