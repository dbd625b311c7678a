package report

import (
	"fmt"

	"github.com/go-analyze/charts"
	"github.com/shopspring/decimal"

	"gitlab.com/finbridge/finbridge/internal/models"
)

// GenerateExpenseChart creates a pie chart showing expense breakdown by
// category. Returns PNG image as bytes.
func GenerateExpenseChart(expenses []models.Expense) ([]byte, error) {
	if len(expenses) == 0 {
		return nil, fmt.Errorf("no expenses to chart")
	}

	categoryTotals := AggregateByCategory(expenses)

	// Walk the category list in display order so chart colors are stable.
	var values []float64
	var categoryNames []string
	for _, name := range models.Categories {
		total, ok := categoryTotals[name]
		if !ok || total.IsZero() {
			continue
		}
		categoryNames = append(categoryNames, name)
		values = append(values, total.InexactFloat64())
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Expense Breakdown",
		}),
		charts.LegendLabelsOptionFunc(categoryNames),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}

// AggregateByCategory groups expenses and returns category totals.
func AggregateByCategory(expenses []models.Expense) map[string]decimal.Decimal {
	categoryTotals := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		if existing, ok := categoryTotals[expense.Category]; ok {
			categoryTotals[expense.Category] = existing.Add(expense.Amount)
		} else {
			categoryTotals[expense.Category] = expense.Amount
		}
	}

	return categoryTotals
}
