package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.com/finbridge/finbridge/internal/logger"
	"gitlab.com/finbridge/finbridge/internal/models"
)

// SeedStarterRecords loads the fixed illustrative expense and reminder set for
// an account that has no persisted records yet. Accounts with any existing
// expenses or reminders are left untouched, so the policy is idempotent.
func (s *Store) SeedStarterRecords(ctx context.Context, owner string) error {
	owner = normalizeEmail(owner)

	expenseCount, err := s.expenses.CountByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	reminderCount, err := s.reminders.CountByOwner(ctx, owner)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if expenseCount > 0 || reminderCount > 0 {
		return nil
	}

	now := s.now()
	for _, exp := range starterExpenses(now) {
		exp.ID = s.newID()
		exp.Owner = owner
		if err := s.expenses.Create(ctx, &exp); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	for _, rem := range starterReminders(now) {
		rem.ID = s.newID()
		rem.Owner = owner
		rem.Status = models.ReminderStatusPending
		if err := s.reminders.Create(ctx, &rem); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	logger.Log.Info().Str("user_hash", logger.HashEmail(owner)).Msg("Seeded starter records")
	return nil
}

func starterExpenses(now time.Time) []models.Expense {
	return []models.Expense{
		{
			Description: "Fall Semester Tuition",
			Amount:      decimal.NewFromInt(15000),
			Date:        now,
			Category:    models.CategoryTuition,
		},
		{
			Description: "Chemistry Textbook",
			Amount:      decimal.NewFromInt(250),
			Date:        now,
			Category:    models.CategoryBooks,
		},
		{
			Description: "Dormitory Rent",
			Amount:      decimal.NewFromInt(4000),
			Date:        now,
			Category:    models.CategoryHousing,
		},
	}
}

func starterReminders(now time.Time) []models.Reminder {
	return []models.Reminder{
		{
			Title:   "Spring Tuition Fee",
			DueDate: time.Date(now.Year(), now.Month()+1, 15, 0, 0, 0, 0, now.Location()),
			Amount:  decimal.NewFromInt(15000),
		},
		{
			Title:   "Activity Fee",
			DueDate: time.Date(now.Year(), now.Month()+2, 1, 0, 0, 0, 0, now.Location()),
			Amount:  decimal.NewFromInt(300),
		},
	}
}
