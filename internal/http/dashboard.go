package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fintrack/internal/database"
	"fintrack/internal/finance"
	"fintrack/internal/models"
)

const trendMonths = 6

// GET /v1/dashboard
func (s *Server) dashboard(c *gin.Context) {
	uid := userID(c)
	now := time.Now()

	var monthExpenses []models.Expense
	if err := database.DB.Preload("Category").
		Where("user_id = ? AND date LIKE ?", uid, monthPrefix(now.Year(), int(now.Month()))+"%").
		Find(&monthExpenses).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	var totalSpent float64
	for _, e := range monthExpenses {
		totalSpent += e.Amount
	}

	// Budget usage for the current month; null when no budget is set.
	var budgetPayload interface{}
	var budget models.Budget
	err := database.DB.Where("user_id = ? AND month = ? AND year = ?", uid, int(now.Month()), now.Year()).
		First(&budget).Error
	switch {
	case err == nil:
		budgetPayload = budgetView{Budget: budget, Usage: finance.Usage(budget.Amount, totalSpent)}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	var recent []models.Expense
	database.DB.Preload("Category").
		Where("user_id = ?", uid).
		Order("date desc, created_at desc").
		Limit(5).
		Find(&recent)

	monthEntries, _ := ledgerEntries(monthExpenses)
	breakdown := finance.Breakdown(monthEntries)

	// Trend over the last six months, empty months included.
	trendStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)
	var trendExpenses []models.Expense
	database.DB.Where("user_id = ? AND date >= ?", uid, trendStart.Format(dateLayout)).
		Find(&trendExpenses)
	trendEntries, _ := ledgerEntries(trendExpenses)
	trend := finance.Trend(trendEntries, now, trendMonths)

	// Expenses dated within the next seven days.
	var upcoming []models.Expense
	database.DB.Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?",
			uid, now.Format(dateLayout), now.AddDate(0, 0, 7).Format(dateLayout)).
		Order("date asc").
		Limit(5).
		Find(&upcoming)

	c.JSON(200, gin.H{
		"total_expenses":     totalSpent,
		"expense_count":      len(monthExpenses),
		"budget":             budgetPayload,
		"recent_expenses":    recent,
		"category_breakdown": breakdown,
		"monthly_trend":      trend,
		"upcoming_expenses":  upcoming,
	})
}
