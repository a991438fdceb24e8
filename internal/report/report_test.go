package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MOstrowka/ExpenseTracker/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func expense(t *testing.T, id int64, description, amount, date, category string) model.Expense {
	t.Helper()
	parsed, err := time.ParseInLocation(model.TimeLayout, date, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", date, err)
	}
	return model.Expense{
		ID:          id,
		Description: description,
		Amount:      dec(t, amount),
		Date:        model.Timestamp{Time: parsed},
		Category:    category,
	}
}

func sample(t *testing.T) []model.Expense {
	t.Helper()
	return []model.Expense{
		expense(t, 1, "Coffee", "4.50", "2026-03-01 10:00:00", "Food"),
		expense(t, 2, "Bus", "2.00", "2026-03-02 08:15:00", "Transport"),
		expense(t, 3, "Lunch", "12.30", "2026-03-02 12:40:00", "Food"),
		expense(t, 4, "Cinema", "9.00", "2026-04-10 19:30:00", "Leisure"),
	}
}

func ids(expenses []model.Expense) []int64 {
	out := make([]int64, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	expenses := sample(t)
	day := func(s string) time.Time {
		d, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	tests := []struct {
		name string
		opts FilterOptions
		want []int64
	}{
		{"no filters", FilterOptions{}, []int64{1, 2, 3, 4}},
		{"category", FilterOptions{Category: "Food"}, []int64{1, 3}},
		{"category no match", FilterOptions{Category: "Rent"}, nil},
		{"start inclusive", FilterOptions{Start: day("2026-03-02 08:15:00")}, []int64{2, 3, 4}},
		{"end inclusive", FilterOptions{End: day("2026-03-02 08:15:00")}, []int64{1, 2}},
		{"range", FilterOptions{Start: day("2026-03-02 00:00:00"), End: day("2026-03-02 23:59:59")}, []int64{2, 3}},
		{"conjunctive", FilterOptions{Category: "Food", Start: day("2026-03-02 00:00:00")}, []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(expenses, tt.opts)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter() ids = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		end     bool
		want    string
		wantErr bool
	}{
		{"date-only start", "2026-03-02", false, "2026-03-02 00:00:00", false},
		{"date-only end covers whole day", "2026-03-02", true, "2026-03-02 23:59:59", false},
		{"full timestamp", "2026-03-02 08:15:00", true, "2026-03-02 08:15:00", false},
		{"garbage", "yesterday", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBound(tt.input, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBound(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBound(%q): %v", tt.input, err)
			}
			if got.Format(model.TimeLayout) != tt.want {
				t.Errorf("ParseBound(%q) = %s, want %s", tt.input, got.Format(model.TimeLayout), tt.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	if total := Total(nil); !total.IsZero() {
		t.Errorf("Total(nil) = %s, want 0", total)
	}

	expenses := []model.Expense{
		expense(t, 1, "a", "10.00", "2026-01-01 00:00:00", "x"),
		expense(t, 2, "b", "25.50", "2026-01-02 00:00:00", "x"),
	}
	if total := Total(expenses); !total.Equal(dec(t, "35.50")) {
		t.Errorf("Total = %s, want 35.50", total)
	}
}

func TestMonthSummary_PinsCurrentYear(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	expenses := []model.Expense{
		expense(t, 1, "this year", "10.00", "2026-03-05 09:00:00", "x"),
		expense(t, 2, "last year", "99.00", "2025-03-05 09:00:00", "x"),
		expense(t, 3, "other month", "7.00", "2026-04-01 09:00:00", "x"),
	}

	sum := MonthSummary(expenses, time.March, now)
	if sum.Count != 1 {
		t.Errorf("Count = %d, want 1 (previous-year March excluded)", sum.Count)
	}
	if !sum.Total.Equal(dec(t, "10.00")) {
		t.Errorf("Total = %s, want 10.00", sum.Total)
	}
}

func TestByCategory(t *testing.T) {
	categories := ByCategory(sample(t))

	if len(categories) != 3 {
		t.Fatalf("got %d categories, want 3", len(categories))
	}
	if categories[0].Category != "Food" || !categories[0].Total.Equal(dec(t, "16.80")) {
		t.Errorf("top category = %+v, want Food 16.80", categories[0])
	}
	if categories[0].Count != 2 {
		t.Errorf("Food count = %d, want 2", categories[0].Count)
	}
	for i := 1; i < len(categories); i++ {
		if categories[i].Total.GreaterThan(categories[i-1].Total) {
			t.Errorf("categories not sorted by total descending: %+v", categories)
		}
	}
}

func TestByMonth(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	expenses := append(sample(t),
		expense(t, 5, "old", "50.00", "2025-03-01 00:00:00", "Food"))

	months := ByMonth(expenses, now)
	if len(months) != 12 {
		t.Fatalf("got %d months, want 12", len(months))
	}

	march := months[2]
	if march.Count != 3 || !march.Total.Equal(dec(t, "18.80")) {
		t.Errorf("March = %+v, want 3 expenses totalling 18.80", march)
	}
	if months[0].Count != 0 || !months[0].Total.IsZero() {
		t.Errorf("January = %+v, want zero", months[0])
	}
}
