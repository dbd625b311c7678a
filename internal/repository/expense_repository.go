package repository

import (
	"context"
	"fmt"

	"gitlab.com/finbridge/finbridge/internal/database"
	"gitlab.com/finbridge/finbridge/internal/models"
)

// ExpenseRepository handles expense database operations. Expenses are
// append-only; there is no update or delete path.
type ExpenseRepository struct {
	db database.PGXDB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db database.PGXDB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create appends a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO expenses (id, owner, description, amount, date, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, expense.ID, expense.Owner, expense.Description, expense.Amount,
		expense.Date, expense.Category,
	).Scan(&expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListByOwner retrieves all expenses for an account in insertion order.
func (r *ExpenseRepository) ListByOwner(ctx context.Context, owner string) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner, description, amount, date, category, created_at
		FROM expenses
		WHERE owner = $1
		ORDER BY seq ASC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(
			&exp.ID, &exp.Owner, &exp.Description, &exp.Amount,
			&exp.Date, &exp.Category, &exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

// CountByOwner returns the number of expenses recorded for an account.
func (r *ExpenseRepository) CountByOwner(ctx context.Context, owner string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM expenses WHERE owner = $1
	`, owner).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
