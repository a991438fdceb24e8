package ledger

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MOstrowka/ExpenseTracker/internal/model"
	"github.com/MOstrowka/ExpenseTracker/internal/store"
)

func newTestLedger(t *testing.T) (*Ledger, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	s := store.New(filepath.Join(dir, "expenses.json"), filepath.Join(dir, "budget.json"))
	return New(s), s
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func mustAdd(t *testing.T, l *Ledger, description, amount, category string) (model.Expense, model.BudgetStatus) {
	t.Helper()
	e, status, err := l.Add(description, dec(t, amount), category)
	if err != nil {
		t.Fatalf("Add(%q): %v", description, err)
	}
	return e, status
}

func TestAdd_SequentialIDs(t *testing.T) {
	l, _ := newTestLedger(t)

	for i, want := range []int64{1, 2, 3} {
		e, _ := mustAdd(t, l, "expense", "1.00", "")
		if e.ID != want {
			t.Errorf("add #%d ID = %d, want %d", i+1, e.ID, want)
		}
	}

	// Deleting a middle record must not cause ID reuse.
	if err := l.Delete(2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	e, _ := mustAdd(t, l, "expense", "1.00", "")
	if e.ID != 4 {
		t.Errorf("ID after delete = %d, want 4", e.ID)
	}
}

func TestAdd_DefaultsCategory(t *testing.T) {
	l, _ := newTestLedger(t)

	e, _ := mustAdd(t, l, "Bus", "2.00", "")
	if e.Category != model.DefaultCategory {
		t.Errorf("Category = %q, want %q", e.Category, model.DefaultCategory)
	}

	e, _ = mustAdd(t, l, "Coffee", "4.50", "Food")
	if e.Category != "Food" {
		t.Errorf("Category = %q, want Food", e.Category)
	}
}

func TestAdd_SetsDate(t *testing.T) {
	l, _ := newTestLedger(t)
	before := time.Now().Truncate(time.Second)
	e, _ := mustAdd(t, l, "Coffee", "4.50", "Food")
	after := time.Now()

	if e.Date.Before(before) || e.Date.After(after) {
		t.Errorf("Date = %v, want between %v and %v", e.Date, before, after)
	}
}

func TestDelete_Twice(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, "Coffee", "4.50", "Food")
	mustAdd(t, l, "Bus", "2.00", "")

	if err := l.Delete(1); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	expenses, err := l.Expenses()
	if err != nil {
		t.Fatal(err)
	}
	if len(expenses) != 1 {
		t.Errorf("collection size = %d after delete, want 1", len(expenses))
	}

	if err := l.Delete(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	l, _ := newTestLedger(t)
	if _, err := l.Update(42, Changes{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update err = %v, want ErrNotFound", err)
	}
}

func TestUpdate_NoFieldsRefreshesOnlyDate(t *testing.T) {
	l, s := newTestLedger(t)

	stale := model.Timestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)}
	seed := []model.Expense{{
		ID:          1,
		Description: "Coffee",
		Amount:      dec(t, "4.50"),
		Date:        stale,
		Category:    "Food",
	}}
	if err := s.SaveExpenses(seed); err != nil {
		t.Fatal(err)
	}

	got, err := l.Update(1, Changes{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got.Description != "Coffee" || !got.Amount.Equal(dec(t, "4.50")) || got.Category != "Food" {
		t.Errorf("fields changed by empty update: %+v", got)
	}
	if got.Date.Equal(stale.Time) {
		t.Error("date was not refreshed")
	}
}

func TestUpdate_ZeroValuesOverwrite(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, "Coffee", "4.50", "Food")

	empty := ""
	zero := decimal.Zero
	got, err := l.Update(1, Changes{Description: &empty, Amount: &zero})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got.Description != "" {
		t.Errorf("Description = %q, want empty", got.Description)
	}
	if !got.Amount.IsZero() {
		t.Errorf("Amount = %s, want 0", got.Amount)
	}
	if got.Category != "Food" {
		t.Errorf("Category = %q, want Food (untouched)", got.Category)
	}
}

func TestUpdate_Persists(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, "Coffee", "4.50", "Food")

	desc := "Espresso"
	if _, err := l.Update(1, Changes{Description: &desc}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	expenses, err := l.Expenses()
	if err != nil {
		t.Fatal(err)
	}
	if expenses[0].Description != "Espresso" {
		t.Errorf("persisted Description = %q, want Espresso", expenses[0].Description)
	}
}

func TestCheckBudget_Unset(t *testing.T) {
	l, _ := newTestLedger(t)
	mustAdd(t, l, "Coffee", "4.50", "Food")

	status, err := l.CheckBudget()
	if err != nil {
		t.Fatalf("CheckBudget: %v", err)
	}
	if status.Set {
		t.Error("Set = true with no budget stored")
	}
	if status.Exceeded {
		t.Error("Exceeded = true with no budget stored")
	}
}

// TestBudgetScenario walks the canonical flow: two adds under no budget, a
// budget of 5.00, then a third add that pushes all-time spend past it.
func TestBudgetScenario(t *testing.T) {
	l, _ := newTestLedger(t)

	e, status := mustAdd(t, l, "Coffee", "4.50", "Food")
	if e.ID != 1 {
		t.Errorf("first ID = %d, want 1", e.ID)
	}
	if status.Exceeded {
		t.Error("budget exceeded before any budget was set")
	}

	e, _ = mustAdd(t, l, "Bus", "2.00", "")
	if e.ID != 2 {
		t.Errorf("second ID = %d, want 2", e.ID)
	}
	if e.Category != model.DefaultCategory {
		t.Errorf("second Category = %q, want %q", e.Category, model.DefaultCategory)
	}

	if err := l.SetBudget(dec(t, "5.00")); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}

	e, status = mustAdd(t, l, "Coffee", "4.50", "Food")
	if e.ID != 3 {
		t.Errorf("third ID = %d, want 3", e.ID)
	}
	if !status.Exceeded {
		t.Error("budget not flagged exceeded at 11.00 > 5.00")
	}
	if !status.Spent.Equal(dec(t, "11.00")) {
		t.Errorf("Spent = %s, want 11.00", status.Spent)
	}
	if !status.Budget.Equal(dec(t, "5.00")) {
		t.Errorf("Budget = %s, want 5.00", status.Budget)
	}
}
