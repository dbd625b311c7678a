package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gitlab.com/finbridge/finbridge/internal/advisor"
	"gitlab.com/finbridge/finbridge/internal/models"
	"gitlab.com/finbridge/finbridge/internal/repository"
	"gitlab.com/finbridge/finbridge/internal/store"
)

// In-memory persistence backing the router under test. One instance holds all
// five collections behind a single lock.
type memStore struct {
	mu        sync.Mutex
	accounts  map[string]models.Account
	students  map[string]models.Student
	expenses  []models.Expense
	reminders []models.Reminder
	payments  []models.Payment
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]models.Account),
		students: make(map[string]models.Student),
	}
}

func (m *memStore) Create(_ context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Email]; ok {
		return fmt.Errorf("duplicate key %q", account.Email)
	}
	m.accounts[account.Email] = *account
	return nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &account, nil
}

type memStudentStore memStore

func (m *memStudentStore) Upsert(_ context.Context, owner string, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.students[owner] = *student
	return nil
}

func (m *memStudentStore) Get(_ context.Context, owner string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	student, ok := m.students[owner]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &student, nil
}

func (m *memStudentStore) Delete(_ context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.students, owner)
	return nil
}

type memExpenseStore memStore

func (m *memExpenseStore) Create(_ context.Context, expense *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses = append(m.expenses, *expense)
	return nil
}

func (m *memExpenseStore) ListByOwner(_ context.Context, owner string) ([]models.Expense, error) {
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

func (m *memExpenseStore) CountByOwner(ctx context.Context, owner string) (int, error) {
	list, err := m.ListByOwner(ctx, owner)
	return len(list), err
}

type memReminderStore memStore

func (m *memReminderStore) Create(_ context.Context, reminder *models.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reminders = append(m.reminders, *reminder)
	return nil
}

func (m *memReminderStore) ListByOwner(_ context.Context, owner string) ([]models.Reminder, error) {
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

func (m *memReminderStore) MarkPaid(_ context.Context, owner, id string) (bool, error) {
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

func (m *memReminderStore) CountByOwner(ctx context.Context, owner string) (int, error) {
	list, err := m.ListByOwner(ctx, owner)
	return len(list), err
}

type memPaymentStore memStore

func (m *memPaymentStore) Create(_ context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *memPaymentStore) ListByOwner(_ context.Context, owner string) ([]models.Payment, error) {
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

func (m *memPaymentStore) TotalByOwner(ctx context.Context, owner string) (decimal.Decimal, error) {
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

// stubAdvisory returns canned text for every flow.
type stubAdvisory struct {
	text string
	err  error
}

func (s *stubAdvisory) PersonalizedAdvice(context.Context, advisor.AdviceInput) (string, error) {
	return s.text, s.err
}

func (s *stubAdvisory) ParseDocument(context.Context, string) (string, error) {
	return s.text, s.err
}

func (s *stubAdvisory) BreakdownExpenses(context.Context, []models.Expense) (string, error) {
	return s.text, s.err
}

func (s *stubAdvisory) SummarizeReminders(context.Context, []models.Reminder, time.Time) (string, error) {
	return s.text, s.err
}

// testRouter wires a full router over in-memory persistence with demo login
// enabled.
func testRouter(t *testing.T, advisory Advisory) *gin.Engine {
	t.Helper()

	mem := newMemStore()
	appStore := store.New(store.Deps{
		Accounts:  mem,
		Students:  (*memStudentStore)(mem),
		Expenses:  (*memExpenseStore)(mem),
		Reminders: (*memReminderStore)(mem),
		Payments:  (*memPaymentStore)(mem),
	}, true)

	return SetupRouter(RouterDeps{
		Store:   appStore,
		Advisor: advisory,
		Tokens:  NewAuthTokens("test-secret"),
		Mode:    gin.TestMode,
	})
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeResponse unmarshals the uniform envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// dataMap returns the envelope data as a generic map.
func dataMap(t *testing.T, resp Response) map[string]any {
	t.Helper()

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "expected object data, got %T", resp.Data)
	return data
}

// loginDemo logs in with the demo credentials and returns the session token.
func loginDemo(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    store.DemoEmail,
		"password": store.DemoPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := dataMap(t, decodeResponse(t, rec))
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
