package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"gitlab.com/finbridge/finbridge/internal/database"
	"gitlab.com/finbridge/finbridge/internal/models"
)

// StudentRepository handles student-profile database operations.
// Each account holds at most one profile.
type StudentRepository struct {
	db database.PGXDB
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db database.PGXDB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Upsert sets the student profile for an account.
func (r *StudentRepository) Upsert(ctx context.Context, owner string, student *models.Student) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO students (owner, year, department, roll_number, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (owner) DO UPDATE SET
			year = EXCLUDED.year,
			department = EXCLUDED.department,
			roll_number = EXCLUDED.roll_number,
			updated_at = NOW()
	`, owner, student.Year, student.Department, student.RollNumber)
	if err != nil {
		return fmt.Errorf("failed to upsert student: %w", err)
	}
	return nil
}

// Get retrieves the student profile for an account. Returns ErrNotFound when
// no profile is set.
func (r *StudentRepository) Get(ctx context.Context, owner string) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx, `
		SELECT year, department, roll_number
		FROM students WHERE owner = $1
	`, owner).Scan(&student.Year, &student.Department, &student.RollNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

// Delete clears the student profile for an account. Deleting an absent
// profile is not an error.
func (r *StudentRepository) Delete(ctx context.Context, owner string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE owner = $1`, owner)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
