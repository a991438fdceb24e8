package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorOrange)
)

// AlignLeft and AlignRight select per-column alignment in a Table.
const (
	AlignLeft = iota
	AlignRight
)

// Table is a bordered text table for CLI output. Align holds one entry per
// column; missing entries default to left for the first column and right for
// the rest, which suits label-plus-numbers layouts.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Align   []int
}

// SeparatorRow marks a horizontal rule between row groups.
var SeparatorRow = []string{"---"}

func (t Table) columns() int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func (t Table) widths(n int) []int {
	widths := make([]int, n)
	for i, h := range t.Headers {
		if lipgloss.Width(h) > widths[i] {
			widths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < n && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	return widths
}

func (t Table) alignment(col int) int {
	if col < len(t.Align) {
		return t.Align[col]
	}
	if col == 0 {
		return AlignLeft
	}
	return AlignRight
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	n := t.columns()
	if n == 0 {
		return ""
	}
	widths := t.widths(n)

	rule := func(left, mid, right string) string {
		parts := make([]string, n)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}

	cell := func(text string, col int, style lipgloss.Style) string {
		w := widths[col]
		if t.alignment(col) == AlignRight {
			return style.Render(fmt.Sprintf(" %*s ", w, text))
		}
		return style.Render(fmt.Sprintf(" %-*s ", w, text))
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	sep := dimStyle.Render("│")
	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(sep)
		for i := 0; i < n; i++ {
			h := ""
			if i < len(t.Headers) {
				h = t.Headers[i]
			}
			b.WriteString(cell(h, i, headerStyle))
			b.WriteString(sep)
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(sep)
		for i := 0; i < n; i++ {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			b.WriteString(cell(text, i, valueStyle))
			b.WriteString(sep)
		}
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// RenderWarning renders a highlighted budget warning line.
func RenderWarning(msg string) string {
	return warnStyle.Render("  ⚠ " + msg)
}

// RenderProgressBar renders a usage bar for a 0-1 fraction. Fractions above
// 1 fill the bar and color it red.
func RenderProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	style := mutedStyle
	switch {
	case fraction > 1:
		fraction = 1
		style = lipgloss.NewStyle().Foreground(ColorRed)
	case fraction > 0.8:
		style = lipgloss.NewStyle().Foreground(ColorOrange)
	default:
		style = lipgloss.NewStyle().Foreground(ColorGreen)
	}

	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return style.Render(bar)
}

// RenderHorizontalBar renders a proportional bar for breakdown rows.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || maxWidth <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	return mutedStyle.Render(strings.Repeat("█", barLen))
}
