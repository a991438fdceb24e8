// Package model defines domain types for expense records and budget tracking.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to expenses created without a category.
const DefaultCategory = "Uncategorized"

// TimeLayout is the timestamp format used in the expenses document.
const TimeLayout = "2006-01-02 15:04:05"

func init() {
	// Amounts persist as bare JSON numbers, matching the document format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Timestamp wraps time.Time to marshal as "YYYY-MM-DD HH:MM:SS".
type Timestamp struct {
	time.Time
}

// Now returns the current local time at second precision.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

// MarshalJSON formats the timestamp using TimeLayout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

// UnmarshalJSON parses a TimeLayout string in local time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timestamp is not a JSON string: %s", s)
	}
	parsed, err := time.ParseInLocation(TimeLayout, s[1:len(s)-1], time.Local)
	if err != nil {
		return fmt.Errorf("parsing timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}

// Expense is one spending entry in the ledger.
type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Timestamp       `json:"date"`
	Category    string          `json:"category"`
}
