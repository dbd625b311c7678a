package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// AdviceTimeout is the timeout for personalized-advice API calls.
const AdviceTimeout = 30 * time.Second

// AdviceInput is the financial data the advice flow is rendered from.
// All amounts are annual figures in INR.
type AdviceInput struct {
	Income                 decimal.Decimal `json:"income"`
	Expenses               decimal.Decimal `json:"expenses"`
	Savings                decimal.Decimal `json:"savings"`
	Debt                   decimal.Decimal `json:"debt"`
	TuitionFees            decimal.Decimal `json:"tuitionFees"`
	OtherEducationExpenses decimal.Decimal `json:"otherEducationExpenses"`
}

// Validate checks the input against the advice schema.
func (in *AdviceInput) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"income", in.Income},
		{"expenses", in.Expenses},
		{"savings", in.Savings},
		{"debt", in.Debt},
		{"tuitionFees", in.TuitionFees},
		{"otherEducationExpenses", in.OtherEducationExpenses},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}
	return nil
}

// PersonalizedAdvice renders the advice prompt from the input and returns the
// generated financial-planning advice text.
func (c *Client) PersonalizedAdvice(ctx context.Context, input AdviceInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, AdviceTimeout)
	defer cancel()

	prompt := buildAdvicePrompt(input)
	advice, err := c.generateText(timeoutCtx, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("personalized advice: %w", err)
	}
	return advice, nil
}

func buildAdvicePrompt(input AdviceInput) string {
	return fmt.Sprintf(`You are a financial advisor providing personalized advice to parents about their child's education expenses.

Based on the following financial data, provide personalized financial planning advice:

Income: %s
Expenses: %s
Savings: %s
Debt: %s
Tuition Fees: %s
Other Education Expenses: %s

Provide clear, actionable advice to help the parent make informed decisions about managing their child's education expenses.
Focus on strategies for saving, budgeting, and managing debt to ensure the child's educational goals are met without causing undue financial stress.
Also include advice about the possibility of applying for financial aid.`,
		input.Income.StringFixed(2),
		input.Expenses.StringFixed(2),
		input.Savings.StringFixed(2),
		input.Debt.StringFixed(2),
		input.TuitionFees.StringFixed(2),
		input.OtherEducationExpenses.StringFixed(2),
	)
}
