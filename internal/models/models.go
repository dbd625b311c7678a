// Package models defines the domain entities for the education-finance dashboard.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories.
const (
	CategoryTuition  = "Tuition"
	CategoryBooks    = "Books"
	CategorySupplies = "Supplies"
	CategoryHousing  = "Housing"
	CategoryOther    = "Other"
)

// Categories lists the valid expense categories in display order.
var Categories = []string{
	CategoryTuition,
	CategoryBooks,
	CategorySupplies,
	CategoryHousing,
	CategoryOther,
}

// Reminder statuses. A reminder moves Pending -> Paid and never back.
const (
	ReminderStatusPending = "Pending"
	ReminderStatusPaid    = "Paid"
)

// StudentYears lists the valid study years.
var StudentYears = []string{"1", "2", "3", "4"}

// MaxDescriptionLength is the maximum allowed length for free-text descriptions.
const MaxDescriptionLength = 200

// Expense is a single education-related expense entry.
type Expense struct {
	ID          string          `json:"id"`
	Owner       string          `json:"-"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"-"`
}

// Reminder is a pending or paid future payment obligation.
type Reminder struct {
	ID        string          `json:"id"`
	Owner     string          `json:"-"`
	Title     string          `json:"title"`
	DueDate   time.Time       `json:"dueDate"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"-"`
}

// Payment is an immutable record of a completed checkout.
type Payment struct {
	ID          string          `json:"id"`
	Owner       string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"-"`
}

// Student is the active student profile for an account. At most one per
// account; its presence gates access to fee-related views.
type Student struct {
	Year       string `json:"year"`
	Department string `json:"department"`
	RollNumber string `json:"rollNumber"`
}

// User is the session identity exposed to clients.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account is a registered credential record. The password is stored only as a
// bcrypt hash.
type Account struct {
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// User returns the session identity for the account.
func (a *Account) User() User {
	return User{Name: a.Name, Email: a.Email}
}

// FeeItem is a single charge line in the fee catalog.
type FeeItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// FeeStructure holds the per-department charge lines for one study year.
type FeeStructure struct {
	Year        string               `json:"year"`
	Departments map[string][]FeeItem `json:"departments"`
}

// ValidCategory reports whether name is a known expense category.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ValidYear reports whether year is a known study year.
func ValidYear(year string) bool {
	for _, y := range StudentYears {
		if y == year {
			return true
		}
	}
	return false
}
