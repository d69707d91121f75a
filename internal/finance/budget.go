// Package finance holds the budget, goal and aggregation arithmetic. It is
// pure: callers fetch rows, this package derives numbers. Nothing here touches
// the database or caches results.
package finance

// BudgetUsage is the derived view of one budget period.
type BudgetUsage struct {
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
	OverBudget  bool    `json:"over_budget"`
}

// Usage computes spend against a budgeted amount. PercentUsed is capped at 100
// even when over budget, so overage magnitude must be read from Remaining or
// OverBudget. A zero amount yields 0 percent rather than dividing by zero.
func Usage(amount, spent float64) BudgetUsage {
	percent := 0.0
	if amount > 0 {
		percent = spent / amount * 100
		if percent > 100 {
			percent = 100
		}
	}
	return BudgetUsage{
		Spent:       spent,
		Remaining:   amount - spent,
		PercentUsed: percent,
		OverBudget:  spent > amount,
	}
}
