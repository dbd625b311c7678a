package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"gitlab.com/finbridge/finbridge/internal/models"
)

// BreakdownTimeout is the timeout for expense-breakdown API calls.
const BreakdownTimeout = 30 * time.Second

// BreakdownExpenses returns a parent-friendly per-category breakdown of the
// given expenses.
func (c *Client) BreakdownExpenses(ctx context.Context, expenses []models.Expense) (string, error) {
	if len(expenses) == 0 {
		return "", fmt.Errorf("%w: at least one expense is required", ErrInvalidInput)
	}
	for _, exp := range expenses {
		if !models.ValidCategory(exp.Category) {
			return "", fmt.Errorf("%w: invalid expense category %q", ErrInvalidInput, exp.Category)
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, BreakdownTimeout)
	defer cancel()

	prompt := buildBreakdownPrompt(expenses)
	breakdown, err := c.generateText(timeoutCtx, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("expense breakdown: %w", err)
	}
	return breakdown, nil
}

func buildBreakdownPrompt(expenses []models.Expense) string {
	var b strings.Builder
	b.WriteString(`You are a financial assistant for parents.
Analyze the following list of expenses and provide a clear, simple breakdown by category.
For each category, state the total amount spent in INR.
Present it as a simple, easy-to-read summary.

Expenses:
`)
	for _, exp := range expenses {
		fmt.Fprintf(&b, "- Description: %s\n  Amount: INR %s\n  Category: %s\n",
			sanitizeField(exp.Description), exp.Amount.StringFixed(2), exp.Category)
	}
	return b.String()
}
