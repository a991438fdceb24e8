// Package report filters and aggregates expense records.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MOstrowka/ExpenseTracker/internal/model"
)

// dateOnlyLayout is accepted for filter bounds alongside model.TimeLayout.
const dateOnlyLayout = "2006-01-02"

// FilterOptions selects a subset of expenses. All fields are optional and
// combine conjunctively. Start and End are inclusive bounds.
type FilterOptions struct {
	Category string
	Start    time.Time
	End      time.Time
}

// ParseBound parses a filter bound given as either a date or a full
// "YYYY-MM-DD HH:MM:SS" timestamp. A date-only end bound is normalized to
// the last second of that day, so an end date includes the whole day.
func ParseBound(s string, end bool) (time.Time, error) {
	if t, err := time.ParseInLocation(model.TimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateOnlyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or %q)", s, model.TimeLayout)
	}
	if end {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}

// Filter returns the expenses matching all set options, preserving the
// original relative order.
func Filter(expenses []model.Expense, opts FilterOptions) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		if opts.Category != "" && e.Category != opts.Category {
			continue
		}
		if !opts.Start.IsZero() && e.Date.Before(opts.Start) {
			continue
		}
		if !opts.End.IsZero() && e.Date.After(opts.End) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// Total sums the amounts of all given expenses.
func Total(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Summarize returns count and total for the given expenses.
func Summarize(expenses []model.Expense) model.Summary {
	return model.Summary{Count: len(expenses), Total: Total(expenses)}
}

// MonthSummary sums expenses dated in the given month of the year of now.
//
// Note the year pinning: a month filter always refers to the current
// calendar year, never the record's own year. An expense from March of a
// previous year is excluded from a March summary. This mirrors the original
// tracker's behavior.
func MonthSummary(expenses []model.Expense, month time.Month, now time.Time) model.Summary {
	return Summarize(InMonth(expenses, month, now))
}

// InMonth returns the expenses dated in the given month of the year of now,
// preserving order. Year pinning as in MonthSummary.
func InMonth(expenses []model.Expense, month time.Month, now time.Time) []model.Expense {
	var matched []model.Expense
	for _, e := range expenses {
		if e.Date.Month() == month && e.Date.Year() == now.Year() {
			matched = append(matched, e)
		}
	}
	return matched
}

// ByCategory computes per-category totals, sorted by total descending.
func ByCategory(expenses []model.Expense) []model.CategorySummary {
	byCat := make(map[string]*model.CategorySummary)
	for _, e := range expenses {
		cs, ok := byCat[e.Category]
		if !ok {
			cs = &model.CategorySummary{Category: e.Category, Total: decimal.Zero}
			byCat[e.Category] = cs
		}
		cs.Count++
		cs.Total = cs.Total.Add(e.Amount)
	}

	categories := make([]model.CategorySummary, 0, len(byCat))
	for _, cs := range byCat {
		categories = append(categories, *cs)
	}
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}

// ByMonth computes totals for every month of the year of now, January
// through December, including months with no spend so charts show gaps as
// zeros.
func ByMonth(expenses []model.Expense, now time.Time) []model.MonthSummary {
	months := make([]model.MonthSummary, 12)
	for i := range months {
		months[i].Month = time.Month(i + 1)
		months[i].Total = decimal.Zero
	}
	for _, e := range expenses {
		if e.Date.Year() != now.Year() {
			continue
		}
		m := &months[int(e.Date.Month())-1]
		m.Count++
		m.Total = m.Total.Add(e.Amount)
	}
	return months
}
