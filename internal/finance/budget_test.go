package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageOverBudget(t *testing.T) {
	u := Usage(500.00, 600.00)

	assert.Equal(t, -100.00, u.Remaining)
	assert.Equal(t, 100.0, u.PercentUsed, "percent stays capped at 100 when over budget")
	assert.True(t, u.OverBudget)
	assert.Equal(t, 600.00, u.Spent)
}

func TestUsagePercentBounds(t *testing.T) {
	cases := []struct {
		name          string
		amount, spent float64
		want          float64
	}{
		{"nothing spent", 500, 0, 0},
		{"half spent", 500, 250, 50},
		{"exactly spent", 500, 500, 100},
		{"overspent", 500, 5000, 100},
		{"zero amount", 0, 300, 0},
		{"zero amount zero spent", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := Usage(tc.amount, tc.spent)
			assert.Equal(t, tc.want, u.PercentUsed)
			assert.GreaterOrEqual(t, u.PercentUsed, 0.0)
			assert.LessOrEqual(t, u.PercentUsed, 100.0)
		})
	}
}

func TestUsageOverBudgetMatchesRemaining(t *testing.T) {
	cases := []struct{ amount, spent float64 }{
		{500, 0}, {500, 499.99}, {500, 500}, {500, 500.01}, {0, 0}, {0, 10},
	}
	for _, tc := range cases {
		u := Usage(tc.amount, tc.spent)
		assert.Equal(t, u.Remaining < 0, u.OverBudget,
			"over-budget must hold exactly when remaining is negative (amount=%v spent=%v)", tc.amount, tc.spent)
	}
}

func TestUsageEmptyLedger(t *testing.T) {
	u := Usage(500, 0)

	assert.Equal(t, 0.0, u.Spent)
	assert.Equal(t, 500.0, u.Remaining)
	assert.False(t, u.OverBudget)
}
