// Package tui provides the interactive Bubble Tea dashboard.
package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
	"github.com/MOstrowka/ExpenseTracker/internal/model"
	"github.com/MOstrowka/ExpenseTracker/internal/report"
)

var tabNames = []string{"Overview", "Expenses", "Categories"}

const (
	tabOverview = iota
	tabExpenses
	tabCategories
)

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(cli.ColorTextMuted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Foreground(cli.ColorAccent).Underline(true)
	labelStyle = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	valueStyle = lipgloss.NewStyle().Foreground(cli.ColorText)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorOrange)
	helpStyle  = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)

// App is the root Bubble Tea model. All data is loaded before the program
// starts; the dashboard itself is read-only.
type App struct {
	expenses   []model.Expense
	summary    model.Summary
	categories []model.CategorySummary
	months     []model.MonthSummary
	budget     model.BudgetStatus
	currency   string

	activeTab int
	width     int
	height    int
	expTable  table.Model
}

// NewApp builds the dashboard model from a loaded expense collection.
func NewApp(expenses []model.Expense, budget model.BudgetStatus, currency string) App {
	now := time.Now()

	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Date", Width: 19},
		{Title: "Description", Width: 30},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 14},
	}

	rows := make([]table.Row, 0, len(expenses))
	// Most recent first in the interactive view.
	for i := len(expenses) - 1; i >= 0; i-- {
		e := expenses[i]
		rows = append(rows, table.Row{
			strconv.FormatInt(e.ID, 10),
			cli.FormatDate(e.Date),
			cli.Truncate(e.Description, 30),
			cli.FormatAmount(e.Amount, currency),
			e.Category,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.ColorAccent)
	styles.Selected = styles.Selected.Foreground(cli.ColorText).Background(cli.ColorBorder)
	t.SetStyles(styles)

	return App{
		expenses:   expenses,
		summary:    report.Summarize(expenses),
		categories: report.ByCategory(expenses),
		months:     report.ByMonth(expenses, now),
		budget:     budget,
		currency:   currency,
		expTable:   t,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		h := msg.Height - 8
		if h < 3 {
			h = 3
		}
		a.expTable.SetHeight(h)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % len(tabNames)
			return a, nil
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + len(tabNames) - 1) % len(tabNames)
			return a, nil
		case "1", "2", "3":
			a.activeTab = int(msg.String()[0] - '1')
			return a, nil
		}
	}

	if a.activeTab == tabExpenses {
		var cmd tea.Cmd
		a.expTable, cmd = a.expTable.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	var content string
	switch a.activeTab {
	case tabExpenses:
		content = a.viewExpenses()
	case tabCategories:
		content = a.viewCategories()
	default:
		content = a.viewOverview()
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.viewTabBar(),
		"",
		content,
		"",
		helpStyle.Render("tab/1-3 switch · j/k move · q quit"),
	))
}

func (a App) viewTabBar() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.activeTab {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}
