package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"gitlab.com/finbridge/finbridge/internal/database"
	"gitlab.com/finbridge/finbridge/internal/models"
)

// AccountRepository handles registered-account database operations.
type AccountRepository struct {
	db database.PGXDB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db database.PGXDB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, account.Email, account.Name, account.PasswordHash).Scan(&account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByEmail retrieves an account by email. Returns ErrNotFound when the
// email is not registered.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.QueryRow(ctx, `
		SELECT email, name, password_hash, created_at
		FROM accounts WHERE email = $1
	`, email).Scan(&account.Email, &account.Name, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}
