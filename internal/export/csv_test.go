package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MOstrowka/ExpenseTracker/internal/model"
)

func sample(t *testing.T) []model.Expense {
	t.Helper()
	date, err := time.ParseInLocation(model.TimeLayout, "2026-03-01 10:00:00", time.Local)
	if err != nil {
		t.Fatal(err)
	}
	amount, err := decimal.NewFromString("4.5")
	if err != nil {
		t.Fatal(err)
	}
	return []model.Expense{{
		ID:          1,
		Description: "Coffee, large",
		Amount:      amount,
		Date:        model.Timestamp{Time: date},
		Category:    "Food",
	}}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample(t), "$"); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != "ID,Date,Description,Amount,Category" {
		t.Errorf("header = %q", lines[0])
	}
	// Description contains a comma, so the csv writer must quote it.
	if lines[1] != `1,2026-03-01 10:00:00,"Coffee, large",$4.50,Food` {
		t.Errorf("record = %q", lines[1])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, "$"); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "ID,Date,Description,Amount,Category" {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := CSVFile(path, sample(t), "€"); err != nil {
		t.Fatalf("CSVFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "€4.50") {
		t.Errorf("file missing currency-formatted amount:\n%s", data)
	}
}
