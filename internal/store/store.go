// Package store implements the application state store: the single owner of
// session and financial state. All mutations of domain records go through it.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"gitlab.com/finbridge/finbridge/internal/fees"
	"gitlab.com/finbridge/finbridge/internal/logger"
	"gitlab.com/finbridge/finbridge/internal/models"
	"gitlab.com/finbridge/finbridge/internal/repository"
)

// Demo account credentials. The original dashboard shipped with this
// hardcoded parent login next to the registered-account list; it is preserved
// as an explicit special-cased account, toggleable via configuration.
const (
	DemoEmail    = "parent@email.com"
	DemoPassword = "password123"
	DemoName     = "Parent User"
)

// ErrInvalidCredentials indicates a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrDuplicateEmail indicates a registration attempt with an email that is
// already registered.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// ErrNoStudent indicates a fee computation was requested before a student
// profile was set.
var ErrNoStudent = errors.New("no student profile set")

// Accounts is the persistence contract for registered accounts.
type Accounts interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// Students is the persistence contract for student profiles.
type Students interface {
	Upsert(ctx context.Context, owner string, student *models.Student) error
	Get(ctx context.Context, owner string) (*models.Student, error)
	Delete(ctx context.Context, owner string) error
}

// Expenses is the persistence contract for expense records.
type Expenses interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByOwner(ctx context.Context, owner string) ([]models.Expense, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
}

// Reminders is the persistence contract for payment reminders.
type Reminders interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	ListByOwner(ctx context.Context, owner string) ([]models.Reminder, error)
	MarkPaid(ctx context.Context, owner, id string) (bool, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
}

// Payments is the persistence contract for payment records.
type Payments interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByOwner(ctx context.Context, owner string) ([]models.Payment, error)
	TotalByOwner(ctx context.Context, owner string) (decimal.Decimal, error)
}

// Deps bundles the persistence dependencies of the store.
type Deps struct {
	Accounts  Accounts
	Students  Students
	Expenses  Expenses
	Reminders Reminders
	Payments  Payments
}

// Store owns session and financial state. It is constructed once by the
// application entry point and passed explicitly to consumers.
type Store struct {
	accounts  Accounts
	students  Students
	expenses  Expenses
	reminders Reminders
	payments  Payments

	demoLogin bool

	now   func() time.Time
	newID func() string
}

// New creates a Store over the given persistence dependencies.
func New(deps Deps, demoLogin bool) *Store {
	return &Store{
		accounts:  deps.Accounts,
		students:  deps.Students,
		expenses:  deps.Expenses,
		reminders: deps.Reminders,
		payments:  deps.Payments,
		demoLogin: demoLogin,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Balance summarizes a student's fee position. All values are recomputed on
// demand, never stored.
type Balance struct {
	FeeTotal  decimal.Decimal `json:"feeTotal"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Balance   decimal.Decimal `json:"balance"`
}

// Login authenticates an email/password pair. The demo credential pair is
// checked first, then the registered-account list. Returns the session user
// on success and ErrInvalidCredentials otherwise.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	if s.demoLogin && email == DemoEmail && password == DemoPassword {
		if err := s.EnsureDemoAccount(ctx); err != nil {
			return nil, err
		}
		logger.Log.Info().Str("user_hash", logger.HashEmail(email)).Msg("Demo login")
		return &models.User{Name: DemoName, Email: DemoEmail}, nil
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Debug().Str("user_hash", logger.HashEmail(email)).Msg("Password mismatch")
		return nil, ErrInvalidCredentials
	}

	user := account.User()
	logger.Log.Info().Str("user_hash", logger.HashEmail(email)).Msg("Login")
	return &user, nil
}

// Register creates a new account and logs it in. Fails with ErrDuplicateEmail
// when the email is already registered. The new account receives the starter
// seed records.
func (s *Store) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := s.SeedStarterRecords(ctx, email); err != nil {
		return nil, err
	}

	user := account.User()
	logger.Log.Info().Str("user_hash", logger.HashEmail(email)).Msg("Registered")
	return &user, nil
}

// Logout tears down the session state for an account: the student profile is
// cleared from persistence. Session token disposal is the caller's concern.
func (s *Store) Logout(ctx context.Context, email string) error {
	if err := s.students.Delete(ctx, normalizeEmail(email)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	logger.Log.Info().Str("user_hash", logger.HashEmail(email)).Msg("Logout")
	return nil
}

// Profile returns the session user for an account.
func (s *Store) Profile(ctx context.Context, email string) (*models.User, error) {
	account, err := s.accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	user := account.User()
	return &user, nil
}

// SetStudent sets or clears the active student profile for an account.
// A nil student clears the profile.
func (s *Store) SetStudent(ctx context.Context, email string, student *models.Student) error {
	owner := normalizeEmail(email)
	if student == nil {
		return s.students.Delete(ctx, owner)
	}
	if !models.ValidYear(student.Year) {
		return fmt.Errorf("invalid study year %q", student.Year)
	}
	if _, ok := fees.Lookup(student.Year, student.Department); !ok {
		return fmt.Errorf("unknown department %q", student.Department)
	}
	return s.students.Upsert(ctx, owner, student)
}

// Student returns the active student profile, or nil when none is set.
func (s *Store) Student(ctx context.Context, email string) (*models.Student, error) {
	student, err := s.students.Get(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return student, err
}

// AddExpense assigns a fresh id and appends the expense to the account's
// collection. Expenses are append-only and keep insertion order.
func (s *Store) AddExpense(ctx context.Context, email string, expense models.Expense) (*models.Expense, error) {
	if !models.ValidCategory(expense.Category) {
		return nil, fmt.Errorf("invalid expense category %q", expense.Category)
	}
	if expense.Amount.IsNegative() {
		return nil, fmt.Errorf("expense amount must not be negative")
	}

	expense.ID = s.newID()
	expense.Owner = normalizeEmail(email)
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}
	if err := s.expenses.Create(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// Expenses lists the account's expenses in insertion order.
func (s *Store) Expenses(ctx context.Context, email string) ([]models.Expense, error) {
	return s.expenses.ListByOwner(ctx, normalizeEmail(email))
}

// AddReminder assigns a fresh id, forces the status to Pending, and appends
// the reminder.
func (s *Store) AddReminder(ctx context.Context, email string, reminder models.Reminder) (*models.Reminder, error) {
	if reminder.Amount.IsNegative() {
		return nil, fmt.Errorf("reminder amount must not be negative")
	}

	reminder.ID = s.newID()
	reminder.Owner = normalizeEmail(email)
	reminder.Status = models.ReminderStatusPending
	if err := s.reminders.Create(ctx, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// Reminders lists the account's reminders in insertion order.
func (s *Store) Reminders(ctx context.Context, email string) ([]models.Reminder, error) {
	return s.reminders.ListByOwner(ctx, normalizeEmail(email))
}

// UpdateReminderStatus transitions a reminder to Paid. Only the Paid status
// is accepted; an absent id is a no-op. The returned bool reports whether a
// reminder changed.
func (s *Store) UpdateReminderStatus(ctx context.Context, email, id, status string) (bool, error) {
	if status != models.ReminderStatusPaid {
		return false, fmt.Errorf("unsupported reminder status transition to %q", status)
	}
	changed, err := s.reminders.MarkPaid(ctx, normalizeEmail(email), id)
	if err != nil {
		return false, err
	}
	if !changed {
		logger.Log.Debug().Str("reminder_id", id).Msg("Reminder status update was a no-op")
	}
	return changed, nil
}

// AddPayment records a mock checkout: it assigns a fresh id, appends the
// payment, and synthesizes a companion Tuition expense carrying the payment's
// amount and date.
func (s *Store) AddPayment(ctx context.Context, email string, payment models.Payment) (*models.Payment, error) {
	if payment.Amount.IsNegative() {
		return nil, fmt.Errorf("payment amount must not be negative")
	}

	owner := normalizeEmail(email)
	payment.ID = s.newID()
	payment.Owner = owner
	if payment.Date.IsZero() {
		payment.Date = s.now()
	}
	if err := s.payments.Create(ctx, &payment); err != nil {
		return nil, err
	}

	// Every payment derives an expense with category fixed to Tuition,
	// regardless of the payment's own description.
	expense := models.Expense{
		ID:          s.newID(),
		Owner:       owner,
		Description: "Payment: " + payment.Description,
		Amount:      payment.Amount,
		Date:        payment.Date,
		Category:    models.CategoryTuition,
	}
	if err := s.expenses.Create(ctx, &expense); err != nil {
		return nil, err
	}

	return &payment, nil
}

// Payments lists the account's payments in insertion order.
func (s *Store) Payments(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.ListByOwner(ctx, normalizeEmail(email))
}

// TotalPaid sums all payment amounts for the account.
func (s *Store) TotalPaid(ctx context.Context, email string) (decimal.Decimal, error) {
	return s.payments.TotalByOwner(ctx, normalizeEmail(email))
}

// FeeBalance computes the account's fee position from the active student
// profile: catalog total for the student's year and department minus the sum
// of all payments. Fails with ErrNoStudent when no profile is set.
func (s *Store) FeeBalance(ctx context.Context, email string) (*Balance, error) {
	owner := normalizeEmail(email)

	student, err := s.students.Get(ctx, owner)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoStudent
	}
	if err != nil {
		return nil, fmt.Errorf("fee balance: %w", err)
	}

	feeTotal := fees.Total(student.Year, student.Department)
	totalPaid, err := s.payments.TotalByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("fee balance: %w", err)
	}

	return &Balance{
		FeeTotal:  feeTotal,
		TotalPaid: totalPaid,
		Balance:   feeTotal.Sub(totalPaid),
	}, nil
}

// EnsureDemoAccount creates the demo parent account if it does not exist yet.
// Called at startup when demo login is enabled, and again on demo login.
func (s *Store) EnsureDemoAccount(ctx context.Context) error {
	_, err := s.accounts.GetByEmail(ctx, DemoEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("ensure demo account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	account := &models.Account{Name: DemoName, Email: DemoEmail, PasswordHash: string(hash)}
	if err := s.accounts.Create(ctx, account); err != nil {
		return fmt.Errorf("ensure demo account: %w", err)
	}
	return s.SeedStarterRecords(ctx, DemoEmail)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
