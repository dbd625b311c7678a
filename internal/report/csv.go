// Package report renders expense data for the reports surface: CSV exports
// and category-breakdown charts.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"gitlab.com/finbridge/finbridge/internal/models"
)

// GenerateExpensesCSV generates a CSV file from a list of expenses.
func GenerateExpensesCSV(expenses []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Date", "Description", "Amount", "Category"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range expenses {
		row := []string{
			expenses[i].ID,
			expenses[i].Date.Format("2006-01-02"),
			expenses[i].Description,
			expenses[i].Amount.StringFixed(2),
			expenses[i].Category,
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportFilename creates a descriptive filename for the CSV export.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("expenses_%s.csv", now.Format("2006-01-02"))
}
