package repository

import (
	"context"
	"fmt"

	"gitlab.com/finbridge/finbridge/internal/database"
	"gitlab.com/finbridge/finbridge/internal/models"
)

// ReminderRepository handles payment-reminder database operations. The only
// permitted mutation is the one-way Pending -> Paid status transition.
type ReminderRepository struct {
	db database.PGXDB
}

// NewReminderRepository creates a new ReminderRepository.
func NewReminderRepository(db database.PGXDB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create appends a new reminder.
func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reminders (id, owner, title, due_date, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, reminder.ID, reminder.Owner, reminder.Title, reminder.DueDate,
		reminder.Amount, reminder.Status,
	).Scan(&reminder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// ListByOwner retrieves all reminders for an account in insertion order.
func (r *ReminderRepository) ListByOwner(ctx context.Context, owner string) ([]models.Reminder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner, title, due_date, amount, status, created_at
		FROM reminders
		WHERE owner = $1
		ORDER BY seq ASC
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.Owner, &rem.Title, &rem.DueDate,
			&rem.Amount, &rem.Status, &rem.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}
	return reminders, nil
}

// MarkPaid transitions a pending reminder to Paid. Marking an absent or
// already-paid reminder is a no-op; the returned bool reports whether a row
// changed.
func (r *ReminderRepository) MarkPaid(ctx context.Context, owner, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE reminders SET status = $3
		WHERE owner = $1 AND id = $2 AND status = $4
	`, owner, id, models.ReminderStatusPaid, models.ReminderStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder paid: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByOwner returns the number of reminders recorded for an account.
func (r *ReminderRepository) CountByOwner(ctx context.Context, owner string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reminders WHERE owner = $1
	`, owner).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reminders: %w", err)
	}
	return count, nil
}
