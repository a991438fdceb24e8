// Package export writes expense records to external file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MOstrowka/ExpenseTracker/internal/cli"
	"github.com/MOstrowka/ExpenseTracker/internal/model"
)

// csvHeader is the fixed column layout of exported files.
var csvHeader = []string{"ID", "Date", "Description", "Amount", "Category"}

// WriteCSV writes the expenses as CSV with a header row. Amounts carry the
// currency symbol, e.g. "$4.50".
func WriteCSV(w io.Writer, expenses []model.Expense, currency string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			cli.FormatDate(e.Date),
			e.Description,
			cli.FormatAmount(e.Amount, currency),
			e.Category,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFile writes the expenses to a CSV file at path, overwriting it.
func CSVFile(path string, expenses []model.Expense, currency string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, expenses, currency); err != nil {
		return err
	}
	return f.Close()
}
