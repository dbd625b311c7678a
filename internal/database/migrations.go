package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the database schema.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			email TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			owner TEXT PRIMARY KEY REFERENCES accounts(email),
			year TEXT NOT NULL,
			department TEXT NOT NULL,
			roll_number TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			owner TEXT NOT NULL REFERENCES accounts(email),
			description TEXT NOT NULL,
			amount DECIMAL(12, 2) NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			category TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			seq BIGSERIAL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_expenses_owner ON expenses(owner)`,

		`CREATE TABLE IF NOT EXISTS reminders (
			id UUID PRIMARY KEY,
			owner TEXT NOT NULL REFERENCES accounts(email),
			title TEXT NOT NULL,
			due_date TIMESTAMPTZ NOT NULL,
			amount DECIMAL(12, 2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			seq BIGSERIAL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_reminders_owner ON reminders(owner)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			owner TEXT NOT NULL REFERENCES accounts(email),
			amount DECIMAL(12, 2) NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			seq BIGSERIAL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_payments_owner ON payments(owner)`,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	return nil
}
