package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the top-level aggregate across a set of expenses.
type Summary struct {
	Count int
	Total decimal.Decimal
}

// CategorySummary holds aggregated spend for a single category.
type CategorySummary struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// MonthSummary holds aggregated spend for one calendar month.
type MonthSummary struct {
	Month time.Month
	Count int
	Total decimal.Decimal
}

// BudgetStatus reports the stored budget against all-time spend.
type BudgetStatus struct {
	Set      bool
	Budget   decimal.Decimal
	Spent    decimal.Decimal
	Exceeded bool
}

// Remaining returns budget minus spend. Negative when over budget.
func (b BudgetStatus) Remaining() decimal.Decimal {
	return b.Budget.Sub(b.Spent)
}

// UsedFraction returns spend as a fraction of budget, for progress bars.
// Returns 0 when no budget is set.
func (b BudgetStatus) UsedFraction() float64 {
	if !b.Set || b.Budget.IsZero() {
		return 0
	}
	f, _ := b.Spent.Div(b.Budget).Float64()
	return f
}
