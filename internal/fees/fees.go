// Package fees holds the static fee catalog: per-year, per-department charge
// lines. The catalog is reference data and is never mutated at runtime.
package fees

import (
	"github.com/shopspring/decimal"

	"gitlab.com/finbridge/finbridge/internal/models"
)

// Departments lists the departments present in every catalog year.
var Departments = []string{
	"Computer Science",
	"Mechanical Engineering",
	"Information Technology",
	"ACSE",
	"BI",
	"BM",
	"Chemical",
	"Pharmacy",
}

func item(description string, amount int64) models.FeeItem {
	return models.FeeItem{Description: description, Amount: decimal.NewFromInt(amount)}
}

var catalog = []models.FeeStructure{
	{
		Year: "1",
		Departments: map[string][]models.FeeItem{
			"Computer Science": {
				item("Tuition Fee", 60000),
				item("Library Fee", 1000),
				item("Lab Fee", 2000),
				item("Hostel Fee", 25000),
			},
			"Mechanical Engineering": {
				item("Tuition Fee", 58000),
				item("Library Fee", 1000),
				item("Workshop Fee", 3000),
				item("Hostel Fee", 25000),
			},
			"Information Technology": {
				item("Tuition Fee", 59000),
				item("Library Fee", 1000),
				item("Lab Fee", 2500),
				item("Hostel Fee", 25000),
			},
			"ACSE": {
				item("Tuition Fee", 57000),
				item("Library Fee", 1000),
				item("Lab Fee", 2000),
				item("Hostel Fee", 25000),
			},
			"BI": {
				item("Tuition Fee", 57500),
				item("Library Fee", 1000),
				item("Lab Fee", 2200),
				item("Hostel Fee", 25000),
			},
			"BM": {
				item("Tuition Fee", 56000),
				item("Library Fee", 1000),
				item("Lab Fee", 1800),
				item("Hostel Fee", 25000),
			},
			"Chemical": {
				item("Tuition Fee", 58500),
				item("Library Fee", 1000),
				item("Lab Fee", 3200),
				item("Hostel Fee", 25000),
			},
			"Pharmacy": {
				item("Tuition Fee", 61000),
				item("Library Fee", 1500),
				item("Lab Fee", 4000),
				item("Hostel Fee", 25000),
			},
		},
	},
	{
		Year: "2",
		Departments: map[string][]models.FeeItem{
			"Computer Science": {
				item("Tuition Fee", 65000),
				item("Library Fee", 1000),
				item("Lab Fee", 2500),
				item("Hostel Fee", 27000),
			},
			"Mechanical Engineering": {
				item("Tuition Fee", 63000),
				item("Library Fee", 1000),
				item("Workshop Fee", 3500),
				item("Hostel Fee", 27000),
			},
			"Information Technology": {
				item("Tuition Fee", 64000),
				item("Library Fee", 1000),
				item("Lab Fee", 3000),
				item("Hostel Fee", 27000),
			},
			"ACSE": {
				item("Tuition Fee", 62000),
				item("Library Fee", 1000),
				item("Lab Fee", 2500),
				item("Hostel Fee", 27000),
			},
			"BI": {
				item("Tuition Fee", 62500),
				item("Library Fee", 1000),
				item("Lab Fee", 2700),
				item("Hostel Fee", 27000),
			},
			"BM": {
				item("Tuition Fee", 61000),
				item("Library Fee", 1000),
				item("Lab Fee", 2300),
				item("Hostel Fee", 27000),
			},
			"Chemical": {
				item("Tuition Fee", 63500),
				item("Library Fee", 1000),
				item("Lab Fee", 3700),
				item("Hostel Fee", 27000),
			},
			"Pharmacy": {
				item("Tuition Fee", 66000),
				item("Library Fee", 1500),
				item("Lab Fee", 4500),
				item("Hostel Fee", 27000),
			},
		},
	},
	{
		Year: "3",
		Departments: map[string][]models.FeeItem{
			"Computer Science": {
				item("Tuition Fee", 70000),
				item("Library Fee", 1000),
				item("Project Fee", 5000),
				item("Hostel Fee", 29000),
			},
			"Mechanical Engineering": {
				item("Tuition Fee", 68000),
				item("Library Fee", 1000),
				item("Project Fee", 4500),
				item("Hostel Fee", 29000),
			},
			"Information Technology": {
				item("Tuition Fee", 69000),
				item("Library Fee", 1000),
				item("Project Fee", 5500),
				item("Hostel Fee", 29000),
			},
			"ACSE": {
				item("Tuition Fee", 67000),
				item("Library Fee", 1000),
				item("Project Fee", 4000),
				item("Hostel Fee", 29000),
			},
			"BI": {
				item("Tuition Fee", 67500),
				item("Library Fee", 1000),
				item("Project Fee", 4200),
				item("Hostel Fee", 29000),
			},
			"BM": {
				item("Tuition Fee", 66000),
				item("Library Fee", 1000),
				item("Project Fee", 3800),
				item("Hostel Fee", 29000),
			},
			"Chemical": {
				item("Tuition Fee", 68500),
				item("Library Fee", 1000),
				item("Project Fee", 4700),
				item("Hostel Fee", 29000),
			},
			"Pharmacy": {
				item("Tuition Fee", 71000),
				item("Library Fee", 1500),
				item("Project Fee", 6000),
				item("Hostel Fee", 29000),
			},
		},
	},
	{
		Year: "4",
		Departments: map[string][]models.FeeItem{
			"Computer Science": {
				item("Tuition Fee", 75000),
				item("Library Fee", 1000),
				item("Placement Training", 5000),
				item("Hostel Fee", 31000),
			},
			"Mechanical Engineering": {
				item("Tuition Fee", 73000),
				item("Library Fee", 1000),
				item("Placement Training", 4500),
				item("Hostel Fee", 31000),
			},
			"Information Technology": {
				item("Tuition Fee", 74000),
				item("Library Fee", 1000),
				item("Placement Training", 5500),
				item("Hostel Fee", 31000),
			},
			"ACSE": {
				item("Tuition Fee", 72000),
				item("Library Fee", 1000),
				item("Placement Training", 4000),
				item("Hostel Fee", 31000),
			},
			"BI": {
				item("Tuition Fee", 72500),
				item("Library Fee", 1000),
				item("Placement Training", 4200),
				item("Hostel Fee", 31000),
			},
			"BM": {
				item("Tuition Fee", 71000),
				item("Library Fee", 1000),
				item("Placement Training", 3800),
				item("Hostel Fee", 31000),
			},
			"Chemical": {
				item("Tuition Fee", 73500),
				item("Library Fee", 1000),
				item("Placement Training", 4700),
				item("Hostel Fee", 31000),
			},
			"Pharmacy": {
				item("Tuition Fee", 76000),
				item("Library Fee", 1500),
				item("Placement Training", 6000),
				item("Hostel Fee", 31000),
			},
		},
	},
}

// Structure returns the full fee catalog ordered by study year.
func Structure() []models.FeeStructure {
	return catalog
}

// Lookup returns the charge lines for the given year and department.
// The second return value is false when the combination is not in the catalog.
func Lookup(year, department string) ([]models.FeeItem, bool) {
	for _, fs := range catalog {
		if fs.Year != year {
			continue
		}
		items, ok := fs.Departments[department]
		return items, ok
	}
	return nil, false
}

// Total sums the charge lines for the given year and department.
// Returns zero when the combination is not in the catalog.
func Total(year, department string) decimal.Decimal {
	items, ok := Lookup(year, department)
	if !ok {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
