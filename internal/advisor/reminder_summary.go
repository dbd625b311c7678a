package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"gitlab.com/finbridge/finbridge/internal/models"
)

// SummaryTimeout is the timeout for reminder-summary API calls.
const SummaryTimeout = 30 * time.Second

// SummarizeReminders returns a short, friendly summary of the given payment
// reminders, anchored to the provided current date.
func (c *Client) SummarizeReminders(ctx context.Context, reminders []models.Reminder, now time.Time) (string, error) {
	if len(reminders) == 0 {
		return "", fmt.Errorf("%w: at least one reminder is required", ErrInvalidInput)
	}
	for _, rem := range reminders {
		if rem.Status != models.ReminderStatusPending && rem.Status != models.ReminderStatusPaid {
			return "", fmt.Errorf("%w: invalid reminder status %q", ErrInvalidInput, rem.Status)
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, SummaryTimeout)
	defer cancel()

	prompt := buildSummaryPrompt(reminders, now)
	summary, err := c.generateText(timeoutCtx, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("reminder summary: %w", err)
	}
	return summary, nil
}

func buildSummaryPrompt(reminders []models.Reminder, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a helpful financial assistant.
Analyze the following list of payment reminders and provide a short, friendly summary for the user.
Focus on the most urgent pending payments. Mention the total number of pending reminders and the total amount due for them.
Today's date is %s.

Reminders:
`, now.Format("Mon Jan 02 2006"))
	for _, rem := range reminders {
		fmt.Fprintf(&b, "- Title: %s\n  Due Date: %s\n  Amount: INR %s\n  Status: %s\n",
			sanitizeField(rem.Title), rem.DueDate.Format("2006-01-02"),
			rem.Amount.StringFixed(2), rem.Status)
	}
	return b.String()
}
