package advisor

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validAdviceInput() AdviceInput {
	return AdviceInput{
		Income:                 decimal.NewFromInt(1200000),
		Expenses:               decimal.NewFromInt(800000),
		Savings:                decimal.NewFromInt(150000),
		Debt:                   decimal.NewFromInt(50000),
		TuitionFees:            decimal.NewFromInt(88000),
		OtherEducationExpenses: decimal.NewFromInt(20000),
	}
}

func TestPersonalizedAdvice(t *testing.T) {
	t.Parallel()

	t.Run("returns generated advice", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{response: textResponse("Save more each month.")}
		client := NewClientWithGenerator(mockGen)

		advice, err := client.PersonalizedAdvice(context.Background(), validAdviceInput())
		require.NoError(t, err)
		require.Equal(t, "Save more each month.", advice)
	})

	t.Run("negative field fails validation before any call", func(t *testing.T) {
		t.Parallel()
		mockGen := &mockGenerator{response: textResponse("unused")}
		client := NewClientWithGenerator(mockGen)

		input := validAdviceInput()
		input.Debt = decimal.NewFromInt(-1)

		advice, err := client.PersonalizedAdvice(context.Background(), input)
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Empty(t, advice)
		require.Nil(t, mockGen.lastContents)
	})

	t.Run("generator error is surfaced", func(t *testing.T) {
		t.Parallel()
		client := NewClientWithGenerator(&mockGenerator{err: context.DeadlineExceeded})

		_, err := client.PersonalizedAdvice(context.Background(), validAdviceInput())
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAdviceInputValidate(t *testing.T) {
	t.Parallel()

	t.Run("zero values are valid", func(t *testing.T) {
		t.Parallel()
		var input AdviceInput
		require.NoError(t, input.Validate())
	})

	t.Run("names the offending field", func(t *testing.T) {
		t.Parallel()
		input := validAdviceInput()
		input.TuitionFees = decimal.NewFromInt(-100)

		err := input.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "tuitionFees")
	})
}

func TestBuildAdvicePrompt(t *testing.T) {
	t.Parallel()

	prompt := buildAdvicePrompt(validAdviceInput())
	require.Contains(t, prompt, "financial advisor")
	require.Contains(t, prompt, "Income: 1200000.00")
	require.Contains(t, prompt, "Tuition Fees: 88000.00")
	require.Contains(t, prompt, "financial aid")
}
