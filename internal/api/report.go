package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gitlab.com/finbridge/finbridge/internal/report"
	"gitlab.com/finbridge/finbridge/internal/store"
)

// ReportHandler serves expense exports and charts.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// ExportCSV streams the account's expenses as a CSV attachment.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	expenses, err := h.store.Expenses(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to load expenses")
		return
	}

	data, err := report.GenerateExpensesCSV(expenses)
	if err != nil {
		InternalError(c, "failed to generate CSV")
		return
	}

	filename := report.ExportFilename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// Chart renders the account's expenses as a category-breakdown pie chart PNG.
func (h *ReportHandler) Chart(c *gin.Context) {
	expenses, err := h.store.Expenses(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to load expenses")
		return
	}
	if len(expenses) == 0 {
		NotFound(c, "no expenses to chart")
		return
	}

	png, err := report.GenerateExpenseChart(expenses)
	if err != nil {
		InternalError(c, "failed to render chart")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
