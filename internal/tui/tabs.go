package tui

import (
	"fmt"
	"strings"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
)

func (a App) viewOverview() string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", label)),
			valueStyle.Render(value)))
	}

	line("Expenses", fmt.Sprintf("%d", a.summary.Count))
	line("Total spend", cli.FormatAmount(a.summary.Total, a.currency))
	b.WriteString("\n")

	if a.budget.Set {
		line("Monthly budget", cli.FormatAmount(a.budget.Budget, a.currency))
		line("Remaining", cli.FormatAmount(a.budget.Remaining(), a.currency))
		b.WriteString(fmt.Sprintf("  %s %s used\n",
			cli.RenderProgressBar(a.budget.UsedFraction(), 30),
			cli.FormatPercent(a.budget.UsedFraction())))
		if a.budget.Exceeded {
			b.WriteString(warnStyle.Render("  ⚠ Budget exceeded") + "\n")
		}
	} else {
		b.WriteString(labelStyle.Render("  No budget set") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Spend by month (this year)") + "\n")
	maxTotal := 0.0
	for _, m := range a.months {
		if t, _ := m.Total.Float64(); t > maxTotal {
			maxTotal = t
		}
	}
	for _, m := range a.months {
		if m.Count == 0 {
			continue
		}
		total, _ := m.Total.Float64()
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-9s", m.Month.String())),
			cli.RenderHorizontalBar(total, maxTotal, 24),
			valueStyle.Render(cli.FormatAmount(m.Total, a.currency))))
	}

	return b.String()
}

func (a App) viewExpenses() string {
	if len(a.expenses) == 0 {
		return labelStyle.Render("  No expenses recorded.")
	}
	return a.expTable.View()
}

func (a App) viewCategories() string {
	if len(a.categories) == 0 {
		return labelStyle.Render("  No expenses recorded.")
	}

	maxTotal, _ := a.categories[0].Total.Float64()

	var b strings.Builder
	for _, cs := range a.categories {
		total, _ := cs.Total.Float64()
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			valueStyle.Render(fmt.Sprintf("%-16s", cli.Truncate(cs.Category, 16))),
			cli.RenderHorizontalBar(total, maxTotal, 24),
			valueStyle.Render(fmt.Sprintf("%12s", cli.FormatAmount(cs.Total, a.currency))),
			labelStyle.Render(fmt.Sprintf("(%d)", cs.Count))))
	}
	return b.String()
}
