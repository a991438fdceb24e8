package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MOstrowka/ExpenseTracker/internal/export"
)

var exportFilename string

var exportCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Export all expenses to a CSV file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFilename, "filename", "", "Path of the CSV file to write")
	_ = exportCmd.MarkFlagRequired("filename")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	led, cfg, err := openLedger()
	if err != nil {
		return err
	}
	expenses, err := led.Expenses()
	if err != nil {
		return err
	}

	if err := export.CSVFile(exportFilename, expenses, cfg.Appearance.Currency); err != nil {
		return err
	}

	fmt.Printf("Exported %d expenses to %s\n", len(expenses), exportFilename)
	return nil
}
