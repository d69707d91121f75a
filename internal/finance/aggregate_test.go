package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownOrdersByTotal(t *testing.T) {
	entries := []LedgerEntry{
		{Category: "Food", Amount: 30},
		{Category: "Food", Amount: 20},
		{Category: "", Amount: 10},
	}

	got := Breakdown(entries)

	require.Len(t, got, 2)
	assert.Equal(t, CategoryTotal{Category: "Food", Total: 50, Count: 2}, got[0])
	assert.Equal(t, CategoryTotal{Category: "Uncategorized", Total: 10, Count: 1}, got[1])
}

func TestBreakdownEmptyLedger(t *testing.T) {
	assert.Empty(t, Breakdown(nil))
	assert.Empty(t, Breakdown([]LedgerEntry{}))
}

func TestBreakdownStableOnTies(t *testing.T) {
	entries := []LedgerEntry{
		{Category: "Travel", Amount: 25},
		{Category: "Shopping", Amount: 25},
	}

	got := Breakdown(entries)

	require.Len(t, got, 2)
	// Equal totals keep first-seen order.
	assert.Equal(t, "Travel", got[0].Category)
	assert.Equal(t, "Shopping", got[1].Category)
}

func TestTrendIncludesEmptyMonths(t *testing.T) {
	end := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	entries := []LedgerEntry{
		{Category: "Food", Amount: 40, Date: "2025-01-10"},
		{Category: "Food", Amount: 60, Date: "2025-03-02"},
		{Category: "Bills", Amount: 15, Date: "2025-03-20"},
	}

	got := Trend(entries, end, 3)

	require.Len(t, got, 3, "a 3-month window always yields 3 points")
	assert.Equal(t, MonthPoint{Month: "2025-01", Label: "Jan 2025", Amount: 40}, got[0])
	assert.Equal(t, MonthPoint{Month: "2025-02", Label: "Feb 2025", Amount: 0}, got[1])
	assert.Equal(t, MonthPoint{Month: "2025-03", Label: "Mar 2025", Amount: 75}, got[2])
}

func TestTrendIgnoresOutOfWindowEntries(t *testing.T) {
	end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	entries := []LedgerEntry{
		{Amount: 100, Date: "2024-01-05"},
		{Amount: 50, Date: "2025-06-05"},
	}

	got := Trend(entries, end, 2)

	require.Len(t, got, 2)
	assert.Equal(t, 0.0, got[0].Amount)
	assert.Equal(t, 50.0, got[1].Amount)
}

func TestTrendCrossesYearBoundary(t *testing.T) {
	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	got := Trend(nil, end, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "2024-11", got[0].Month)
	assert.Equal(t, "2024-12", got[1].Month)
	assert.Equal(t, "2025-01", got[2].Month)
}

func TestTopCategory(t *testing.T) {
	top, ok := TopCategory([]CategoryTotal{
		{Category: "Food", Total: 50, Count: 2},
		{Category: "Uncategorized", Total: 10, Count: 1},
	})
	require.True(t, ok)
	assert.Equal(t, "Food", top.Category)

	_, ok = TopCategory(nil)
	assert.False(t, ok, "top category is undefined on an empty ledger")
}

func TestAverageMonthlyUsesWindowLength(t *testing.T) {
	// 300 over a 6-month window averages 50 even if only two months had spend.
	assert.Equal(t, 50.0, AverageMonthly(300, 6))
	assert.Equal(t, 0.0, AverageMonthly(300, 0))
	assert.Equal(t, 0.0, AverageMonthly(0, 6))
}
