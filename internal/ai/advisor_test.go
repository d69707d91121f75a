package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTipsNumberedList(t *testing.T) {
	text := `1. Cut back on Food & Dining, your largest category.
2) Set a weekly grocery cap.

3. Cancel the streaming service you haven't used this month.`

	tips := ParseTips(text)

	require.Len(t, tips, 3)
	assert.Equal(t, "Cut back on Food & Dining, your largest category.", tips[0])
	assert.Equal(t, "Set a weekly grocery cap.", tips[1])
}

func TestParseTipsBullets(t *testing.T) {
	tips := ParseTips("- first tip here\n• second tip here\n* third tip here")

	require.Len(t, tips, 3)
	assert.Equal(t, "first tip here", tips[0])
	assert.Equal(t, "second tip here", tips[1])
	assert.Equal(t, "third tip here", tips[2])
}

func TestParseTipsEmpty(t *testing.T) {
	assert.Empty(t, ParseTips(""))
	assert.Empty(t, ParseTips("\n \n"))
}

func TestUserPrompt(t *testing.T) {
	s := SpendingSummary{
		CurrencySymbol: "$",
		TotalSpent:     620.50,
		ExpenseCount:   14,
		AvgTransaction: 44.32,
		CategoryLines:  []string{"Food & Dining: $300.00 (48.4%)", "Travel: $150.00 (24.2%)"},
		BudgetLine:     "Budget: $500.00, Spent: $620.50, Remaining: $-120.50, Usage: 100.0% (OVER BUDGET)",
		LastMonthTotal: 480.00,
		SpendingChange: 29.3,
	}

	prompt := UserPrompt(s)

	assert.Contains(t, prompt, "Current Month Spending: $620.50")
	assert.Contains(t, prompt, "Food & Dining: $300.00 (48.4%)")
	assert.Contains(t, prompt, "OVER BUDGET")
	assert.Contains(t, prompt, "+29.3% increase")
}

func TestUserPromptNoCategories(t *testing.T) {
	prompt := UserPrompt(SpendingSummary{CurrencySymbol: "$", BudgetLine: "No budget set for this month"})

	assert.Contains(t, prompt, "No categories yet")
	assert.Contains(t, prompt, "decrease")
}

func TestFallbackTipsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, FallbackTips())
}
