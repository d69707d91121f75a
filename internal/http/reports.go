package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/database"
	"fintrack/internal/finance"
	"fintrack/internal/models"
)

// GET /v1/reports?months=N
func (s *Server) reports(c *gin.Context) {
	uid := userID(c)
	now := time.Now()

	months := 6
	if m := c.Query("months"); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v >= 1 && v <= 24 {
			months = v
		}
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	var expenses []models.Expense
	if err := database.DB.Preload("Category").
		Where("user_id = ? AND date >= ?", uid, start.Format(dateLayout)).
		Find(&expenses).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	entries, icons := ledgerEntries(expenses)
	breakdown := finance.Breakdown(entries)
	trend := finance.Trend(entries, now, months)

	var totalSpend float64
	for _, e := range entries {
		totalSpend += e.Amount
	}

	// Average divides by the requested window, so empty months count.
	average := finance.AverageMonthly(totalSpend, months)

	var topPayload interface{}
	if top, ok := finance.TopCategory(breakdown); ok {
		topPayload = gin.H{
			"name":  top.Category,
			"icon":  icons[top.Category],
			"total": top.Total,
			"count": top.Count,
		}
	}

	c.JSON(200, gin.H{
		"months":                months,
		"category_distribution": breakdown,
		"monthly_trend":         trend,
		"total_spend":           totalSpend,
		"average_monthly":       average,
		"top_category":          topPayload,
	})
}
