// Package ledger implements the mutating operations over the expense
// collection: creating, updating, and deleting records, plus the monthly
// budget threshold. Every operation loads fresh state from the store and
// persists the full collection back; no state survives between calls.
package ledger

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/MOstrowka/ExpenseTracker/internal/model"
	"github.com/MOstrowka/ExpenseTracker/internal/report"
	"github.com/MOstrowka/ExpenseTracker/internal/store"
)

// ErrNotFound is returned when no expense matches the requested ID.
var ErrNotFound = errors.New("expense not found")

// Changes describes an update to an existing expense. A nil field is left
// untouched; a non-nil field is overwritten even when the new value is empty
// or zero, so an amount can be deliberately reset.
type Changes struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *string
}

// Ledger applies record operations against a document store.
type Ledger struct {
	store *store.Store
}

// New creates a ledger over the given store.
func New(s *store.Store) *Ledger {
	return &Ledger{store: s}
}

// Expenses loads the current expense collection.
func (l *Ledger) Expenses() ([]model.Expense, error) {
	return l.store.LoadExpenses()
}

// Add appends a new expense and returns it together with the budget status
// evaluated after the write. IDs are assigned as max(existing)+1 and never
// reused after deletion. An empty category defaults to model.DefaultCategory.
func (l *Ledger) Add(description string, amount decimal.Decimal, category string) (model.Expense, model.BudgetStatus, error) {
	expenses, err := l.store.LoadExpenses()
	if err != nil {
		return model.Expense{}, model.BudgetStatus{}, err
	}

	var maxID int64
	for _, e := range expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	if category == "" {
		category = model.DefaultCategory
	}

	expense := model.Expense{
		ID:          maxID + 1,
		Description: description,
		Amount:      amount,
		Date:        model.Now(),
		Category:    category,
	}

	expenses = append(expenses, expense)
	if err := l.store.SaveExpenses(expenses); err != nil {
		return model.Expense{}, model.BudgetStatus{}, err
	}
	log.Debug().Int64("id", expense.ID).Str("amount", amount.String()).Msg("expense added")

	status, err := l.checkBudget(expenses)
	if err != nil {
		return model.Expense{}, model.BudgetStatus{}, err
	}
	return expense, status, nil
}

// Update overwrites the provided fields of the expense with the given ID and
// refreshes its date to now. Returns ErrNotFound without persisting when no
// record matches.
func (l *Ledger) Update(id int64, changes Changes) (model.Expense, error) {
	expenses, err := l.store.LoadExpenses()
	if err != nil {
		return model.Expense{}, err
	}

	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}
		if changes.Description != nil {
			expenses[i].Description = *changes.Description
		}
		if changes.Amount != nil {
			expenses[i].Amount = *changes.Amount
		}
		if changes.Category != nil {
			expenses[i].Category = *changes.Category
		}
		expenses[i].Date = model.Now()

		if err := l.store.SaveExpenses(expenses); err != nil {
			return model.Expense{}, err
		}
		log.Debug().Int64("id", id).Msg("expense updated")
		return expenses[i], nil
	}

	return model.Expense{}, ErrNotFound
}

// Delete removes the expense with the given ID. Returns ErrNotFound without
// persisting when no record matches.
func (l *Ledger) Delete(id int64) error {
	expenses, err := l.store.LoadExpenses()
	if err != nil {
		return err
	}

	remaining := expenses[:0:0]
	for _, e := range expenses {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(expenses) {
		return ErrNotFound
	}

	if err := l.store.SaveExpenses(remaining); err != nil {
		return err
	}
	log.Debug().Int64("id", id).Msg("expense deleted")
	return nil
}

// SetBudget overwrites the stored monthly budget unconditionally.
func (l *Ledger) SetBudget(amount decimal.Decimal) error {
	return l.store.SaveBudget(amount)
}

// CheckBudget compares all-time spend against the stored budget. The check
// carries no memory: it is recomputed from scratch on every call.
func (l *Ledger) CheckBudget() (model.BudgetStatus, error) {
	expenses, err := l.store.LoadExpenses()
	if err != nil {
		return model.BudgetStatus{}, err
	}
	return l.checkBudget(expenses)
}

func (l *Ledger) checkBudget(expenses []model.Expense) (model.BudgetStatus, error) {
	budget, err := l.store.LoadBudget()
	if err != nil {
		return model.BudgetStatus{}, err
	}

	status := model.BudgetStatus{
		Set:    budget.IsPositive(),
		Budget: budget,
		Spent:  report.Total(expenses),
	}
	status.Exceeded = status.Set && status.Spent.GreaterThan(budget)
	return status, nil
}
