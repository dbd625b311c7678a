package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.com/finbridge/finbridge/internal/models"
	"gitlab.com/finbridge/finbridge/internal/repository"
)

// In-memory implementations of the persistence contracts so store behavior
// can be tested without a database.

type memAccounts struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{accounts: make(map[string]*models.Account)}
}

func (m *memAccounts) Create(_ context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Email]; ok {
		return fmt.Errorf("duplicate key %q", account.Email)
	}
	account.CreatedAt = time.Now()
	cp := *account
	m.accounts[account.Email] = &cp
	return nil
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *account
	return &cp, nil
}

type memStudents struct {
	mu       sync.Mutex
	students map[string]*models.Student
}

func newMemStudents() *memStudents {
	return &memStudents{students: make(map[string]*models.Student)}
}

func (m *memStudents) Upsert(_ context.Context, owner string, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *student
	m.students[owner] = &cp
	return nil
}

func (m *memStudents) Get(_ context.Context, owner string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	student, ok := m.students[owner]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *student
	return &cp, nil
}

func (m *memStudents) Delete(_ context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.students, owner)
	return nil
}

type memExpenses struct {
	mu       sync.Mutex
	expenses []models.Expense
}

func (m *memExpenses) Create(_ context.Context, expense *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	expense.CreatedAt = time.Now()
	m.expenses = append(m.expenses, *expense)
	return nil
}

func (m *memExpenses) ListByOwner(_ context.Context, owner string) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Expense
	for _, exp := range m.expenses {
		if exp.Owner == owner {
			out = append(out, exp)
		}
	}
	return out, nil
}

func (m *memExpenses) CountByOwner(ctx context.Context, owner string) (int, error) {
	list, err := m.ListByOwner(ctx, owner)
	return len(list), err
}

type memReminders struct {
	mu        sync.Mutex
	reminders []models.Reminder
}

func (m *memReminders) Create(_ context.Context, reminder *models.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	reminder.CreatedAt = time.Now()
	m.reminders = append(m.reminders, *reminder)
	return nil
}

func (m *memReminders) ListByOwner(_ context.Context, owner string) ([]models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Reminder
	for _, rem := range m.reminders {
		if rem.Owner == owner {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (m *memReminders) MarkPaid(_ context.Context, owner, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reminders {
		rem := &m.reminders[i]
		if rem.Owner == owner && rem.ID == id && rem.Status == models.ReminderStatusPending {
			rem.Status = models.ReminderStatusPaid
			return true, nil
		}
	}
	return false, nil
}

func (m *memReminders) CountByOwner(ctx context.Context, owner string) (int, error) {
	list, err := m.ListByOwner(ctx, owner)
	return len(list), err
}

type memPayments struct {
	mu       sync.Mutex
	payments []models.Payment
}

func (m *memPayments) Create(_ context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.CreatedAt = time.Now()
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *memPayments) ListByOwner(_ context.Context, owner string) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Payment
	for _, p := range m.payments {
		if p.Owner == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPayments) TotalByOwner(ctx context.Context, owner string) (decimal.Decimal, error) {
	list, err := m.ListByOwner(ctx, owner)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range list {
		total = total.Add(p.Amount)
	}
	return total, nil
}

// newTestStore builds a store over in-memory persistence with a deterministic
// clock and id sequence.
func newTestStore(t *testing.T, demoLogin bool) *Store {
	t.Helper()

	s := New(Deps{
		Accounts:  newMemAccounts(),
		Students:  newMemStudents(),
		Expenses:  &memExpenses{},
		Reminders: &memReminders{},
		Payments:  &memPayments{},
	}, demoLogin)

	var seq int
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%04d", seq)
	}
	s.now = func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return s
}
