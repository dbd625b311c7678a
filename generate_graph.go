//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gitlab.com/finbridge/finbridge/internal/models"
	"gitlab.com/finbridge/finbridge/internal/report"
)

func main() {
	expenses := []models.Expense{
		{Amount: decimal.NewFromInt(15000), Category: models.CategoryTuition},
		{Amount: decimal.NewFromInt(250), Category: models.CategoryBooks},
		{Amount: decimal.NewFromInt(120), Category: models.CategorySupplies},
		{Amount: decimal.NewFromInt(4000), Category: models.CategoryHousing},
		{Amount: decimal.NewFromInt(300), Category: models.CategoryOther},
	}

	chartData, err := report.GenerateExpenseChart(expenses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("graph.png", chartData, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Created graph.png - Example expense breakdown chart")
}
