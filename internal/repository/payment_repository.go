package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gitlab.com/finbridge/finbridge/internal/database"
	"gitlab.com/finbridge/finbridge/internal/models"
)

// PaymentRepository handles payment database operations. Payments are
// immutable once created.
type PaymentRepository struct {
	db database.PGXDB
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db database.PGXDB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create appends a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (id, owner, amount, date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, payment.ID, payment.Owner, payment.Amount, payment.Date, payment.Description,
	).Scan(&payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// ListByOwner retrieves all payments for an account in insertion order.
func (r *PaymentRepository) ListByOwner(ctx context.Context, owner string) ([]models.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner, amount, date, description, created_at
		FROM payments
		WHERE owner = $1
		ORDER BY seq ASC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(
			&p.ID, &p.Owner, &p.Amount, &p.Date, &p.Description, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}
	return payments, nil
}

// TotalByOwner sums all payment amounts for an account.
func (r *PaymentRepository) TotalByOwner(ctx context.Context, owner string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments WHERE owner = $1
	`, owner).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total payments: %w", err)
	}
	return total, nil
}
