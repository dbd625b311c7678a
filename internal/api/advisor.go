package api

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"gitlab.com/finbridge/finbridge/internal/advisor"
	"gitlab.com/finbridge/finbridge/internal/logger"
	"gitlab.com/finbridge/finbridge/internal/models"
	"gitlab.com/finbridge/finbridge/internal/store"
)

// Advisory is the contract the advisor handler needs from the advisory
// client. Satisfied by *advisor.Client.
type Advisory interface {
	PersonalizedAdvice(ctx context.Context, input advisor.AdviceInput) (string, error)
	ParseDocument(ctx context.Context, dataURI string) (string, error)
	BreakdownExpenses(ctx context.Context, expenses []models.Expense) (string, error)
	SummarizeReminders(ctx context.Context, reminders []models.Reminder, now time.Time) (string, error)
}

// AdvisorHandler serves the four generative advisory flows.
type AdvisorHandler struct {
	store   *store.Store
	advisor Advisory
}

// NewAdvisorHandler creates an AdvisorHandler.
func NewAdvisorHandler(s *store.Store, a Advisory) *AdvisorHandler {
	return &AdvisorHandler{store: s, advisor: a}
}

// adviseError maps an advisory failure onto the response: schema failures are
// the client's fault, everything else is the external service's.
func adviseError(c *gin.Context, err error, message string) {
	if errors.Is(err, advisor.ErrInvalidInput) {
		BadRequest(c, err.Error())
		return
	}
	logger.Log.Error().Err(err).Msg(message)
	BadGateway(c, message)
}

// Advice runs the personalized-advice flow.
func (h *AdvisorHandler) Advice(c *gin.Context) {
	var input advisor.AdviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	advice, err := h.advisor.PersonalizedAdvice(c.Request.Context(), input)
	if err != nil {
		adviseError(c, err, "advice generation failed")
		return
	}
	Success(c, gin.H{"advice": advice})
}

// ParseDocumentRequest is the payload for POST /api/advisor/documents/parse.
type ParseDocumentRequest struct {
	DocumentDataURI string `json:"documentDataUri" binding:"required"`
}

// ParseDocument runs the document-parsing flow.
func (h *AdvisorHandler) ParseDocument(c *gin.Context) {
	var req ParseDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	extracted, err := h.advisor.ParseDocument(c.Request.Context(), req.DocumentDataURI)
	if err != nil {
		adviseError(c, err, "document parsing failed")
		return
	}
	Success(c, gin.H{"extractedInformation": extracted})
}

// BreakdownExpenses runs the expense-breakdown flow over the account's
// recorded expenses.
func (h *AdvisorHandler) BreakdownExpenses(c *gin.Context) {
	expenses, err := h.store.Expenses(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to load expenses")
		return
	}

	breakdown, err := h.advisor.BreakdownExpenses(c.Request.Context(), expenses)
	if err != nil {
		adviseError(c, err, "expense breakdown failed")
		return
	}
	Success(c, gin.H{"breakdown": breakdown})
}

// SummarizeReminders runs the reminder-summary flow over the account's
// reminders.
func (h *AdvisorHandler) SummarizeReminders(c *gin.Context) {
	reminders, err := h.store.Reminders(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to load reminders")
		return
	}

	summary, err := h.advisor.SummarizeReminders(c.Request.Context(), reminders, time.Now())
	if err != nil {
		adviseError(c, err, "reminder summary failed")
		return
	}
	Success(c, gin.H{"summary": summary})
}
