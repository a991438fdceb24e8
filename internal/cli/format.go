// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MOstrowka/ExpenseTracker/internal/model"
)

// FormatAmount formats a monetary amount with the currency symbol and two
// decimal places. e.g., 4.5 -> "$4.50"
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = "$"
	}
	if amount.IsNegative() {
		return "-" + currency + amount.Neg().StringFixed(2)
	}
	return currency + amount.StringFixed(2)
}

// FormatDate formats an expense timestamp for table display.
func FormatDate(t model.Timestamp) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.TimeLayout)
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Truncate shortens a string to maxLen runes, ellipsized.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 1 {
		return ""
	}
	return string(runes[:maxLen-1]) + "…"
}
