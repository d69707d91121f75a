package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/ai"
	"fintrack/internal/database"
	"fintrack/internal/finance"
	"fintrack/internal/models"
)

// GET /v1/tips
//
// Builds a spending summary for the current month and asks the advisor for
// personalized savings tips. Falls back to the canned list when the model is
// unavailable, so the endpoint always returns tips.
func (s *Server) savingsTips(c *gin.Context) {
	uid := userID(c)
	now := time.Now()

	var monthExpenses []models.Expense
	if err := database.DB.Preload("Category").
		Where("user_id = ? AND date LIKE ?", uid, monthPrefix(now.Year(), int(now.Month()))+"%").
		Find(&monthExpenses).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	cur := userCurrency(uid)

	var totalSpent float64
	for _, e := range monthExpenses {
		totalSpent += e.Amount
	}

	entries, _ := ledgerEntries(monthExpenses)
	breakdown := finance.Breakdown(entries)
	if len(breakdown) > 5 {
		breakdown = breakdown[:5]
	}
	categoryLines := make([]string, 0, len(breakdown))
	for _, b := range breakdown {
		percent := 0.0
		if totalSpent > 0 {
			percent = b.Total / totalSpent * 100
		}
		categoryLines = append(categoryLines, fmt.Sprintf("%s: %s%.2f (%.1f%%)", b.Category, cur.Symbol, b.Total, percent))
	}

	lastMonth := now.AddDate(0, -1, 0)
	lastMonthTotal, err := monthlyTotal(uid, lastMonth.Year(), int(lastMonth.Month()))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	change := 0.0
	if lastMonthTotal > 0 {
		change = (totalSpent - lastMonthTotal) / lastMonthTotal * 100
	}

	budgetLine := "No budget set for this month"
	var budget models.Budget
	if err := database.DB.Where("user_id = ? AND month = ? AND year = ?", uid, int(now.Month()), now.Year()).
		First(&budget).Error; err == nil {
		usage := finance.Usage(budget.Amount, totalSpent)
		budgetLine = fmt.Sprintf("Budget: %s%.2f, Spent: %s%.2f, Remaining: %s%.2f, Usage: %.1f%%",
			cur.Symbol, budget.Amount, cur.Symbol, totalSpent, cur.Symbol, usage.Remaining, usage.PercentUsed)
		if usage.OverBudget {
			budgetLine += " (OVER BUDGET)"
		}
	}

	avgTransaction := 0.0
	if len(monthExpenses) > 0 {
		avgTransaction = totalSpent / float64(len(monthExpenses))
	}

	summary := ai.SpendingSummary{
		CurrencySymbol: cur.Symbol,
		TotalSpent:     totalSpent,
		ExpenseCount:   len(monthExpenses),
		AvgTransaction: avgTransaction,
		CategoryLines:  categoryLines,
		BudgetLine:     budgetLine,
		LastMonthTotal: lastMonthTotal,
		SpendingChange: change,
	}

	hasKey := s.cfg.OpenAIKey != ""
	var tips []string
	var errorMessage string
	if hasKey {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(s.cfg.ReqTimeoutSec)*time.Second)
		defer cancel()
		tips, err = s.advisor.SavingsTips(ctx, summary)
		if err != nil {
			s.log.WithError(err).Warn("advisor unavailable, serving fallback tips")
			errorMessage = "AI service temporarily unavailable. Using default tips."
			tips = ai.FallbackTips()
		}
	} else {
		tips = ai.FallbackTips()
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate, max-age=0")
	c.JSON(200, gin.H{
		"tips":             tips,
		"spending_summary": summary.BudgetLine,
		"category_lines":   categoryLines,
		"error_message":    errorMessage,
		"has_api_key":      hasKey,
		"generated_at":     time.Now().Format(time.RFC3339),
	})
}
