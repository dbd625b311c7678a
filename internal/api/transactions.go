package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gitlab.com/finbridge/finbridge/internal/models"
	"gitlab.com/finbridge/finbridge/internal/store"
)

// TransactionHandler serves the financial records: expenses, reminders,
// and payments.
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// ExpenseRequest is the payload for POST /api/transactions/expenses.
type ExpenseRequest struct {
	Description string          `json:"description" binding:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category" binding:"required"`
}

// CreateExpense appends a new expense for the authenticated account.
func (h *TransactionHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	expense, err := h.store.AddExpense(c.Request.Context(), CurrentEmail(c), models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
	})
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, expense)
}

// ListExpenses returns the account's expenses in insertion order.
func (h *TransactionHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.store.Expenses(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to list expenses")
		return
	}
	Success(c, expenses)
}

// ReminderRequest is the payload for POST /api/transactions/reminders.
type ReminderRequest struct {
	Title   string          `json:"title" binding:"required,max=200"`
	DueDate time.Time       `json:"dueDate" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

// CreateReminder appends a new pending reminder.
func (h *TransactionHandler) CreateReminder(c *gin.Context) {
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	reminder, err := h.store.AddReminder(c.Request.Context(), CurrentEmail(c), models.Reminder{
		Title:   req.Title,
		DueDate: req.DueDate,
		Amount:  req.Amount,
	})
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, reminder)
}

// ListReminders returns the account's reminders in insertion order.
func (h *TransactionHandler) ListReminders(c *gin.Context) {
	reminders, err := h.store.Reminders(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to list reminders")
		return
	}
	Success(c, reminders)
}

// MarkReminderPaid transitions a reminder to Paid. An unknown id is a no-op
// and still returns success; the response body reports whether anything
// changed.
func (h *TransactionHandler) MarkReminderPaid(c *gin.Context) {
	changed, err := h.store.UpdateReminderStatus(
		c.Request.Context(), CurrentEmail(c), c.Param("id"), models.ReminderStatusPaid)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, gin.H{"updated": changed})
}

// PaymentRequest is the payload for POST /api/transactions/payments.
type PaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description" binding:"required,max=200"`
}

// CreatePayment records a mock checkout. The store also synthesizes the
// companion Tuition expense.
func (h *TransactionHandler) CreatePayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	payment, err := h.store.AddPayment(c.Request.Context(), CurrentEmail(c), models.Payment{
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, payment)
}

// ListPayments returns the account's payments in insertion order.
func (h *TransactionHandler) ListPayments(c *gin.Context) {
	payments, err := h.store.Payments(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to list payments")
		return
	}
	Success(c, payments)
}
