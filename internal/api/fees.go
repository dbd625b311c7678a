package api

import (
	"github.com/gin-gonic/gin"

	"gitlab.com/finbridge/finbridge/internal/fees"
)

// FeesHandler serves the static fee catalog.
type FeesHandler struct{}

// NewFeesHandler creates a FeesHandler.
func NewFeesHandler() *FeesHandler {
	return &FeesHandler{}
}

// List returns the full fee catalog ordered by study year.
func (h *FeesHandler) List(c *gin.Context) {
	Success(c, fees.Structure())
}

// Lookup returns the charge lines for one year and department, with their
// total.
func (h *FeesHandler) Lookup(c *gin.Context) {
	year := c.Param("year")
	department := c.Query("department")

	items, ok := fees.Lookup(year, department)
	if !ok {
		NotFound(c, "no fee structure for that year and department")
		return
	}
	Success(c, gin.H{
		"year":       year,
		"department": department,
		"items":      items,
		"total":      fees.Total(year, department),
	})
}
