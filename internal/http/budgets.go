package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fintrack/internal/database"
	"fintrack/internal/finance"
	"fintrack/internal/models"
)

type budgetView struct {
	models.Budget
	Usage finance.BudgetUsage `json:"usage"`
}

// GET /v1/budgets
func (s *Server) listBudgets(c *gin.Context) {
	uid := userID(c)

	var budgets []models.Budget
	if err := database.DB.Where("user_id = ?", uid).
		Order("year desc, month desc").
		Find(&budgets).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	views := make([]budgetView, 0, len(budgets))
	for _, b := range budgets {
		spent, err := monthlyTotal(uid, b.Year, b.Month)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		views = append(views, budgetView{Budget: b, Usage: finance.Usage(b.Amount, spent)})
	}

	c.JSON(200, views)
}

// POST /v1/budgets
//
// Creates the budget for (month, year) or updates its amount when one already
// exists, matching the unique constraint per owner and period.
func (s *Server) upsertBudget(c *gin.Context) {
	uid := userID(c)

	var input struct {
		Month  int     `json:"month" binding:"required,min=1,max=12"`
		Year   int     `json:"year" binding:"required,min=2000,max=2100"`
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var budget models.Budget
	err := database.DB.Where("user_id = ? AND month = ? AND year = ?", uid, input.Month, input.Year).
		First(&budget).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if created {
		budget = models.Budget{UserID: uid, Month: input.Month, Year: input.Year, Amount: input.Amount}
		if err := database.DB.Create(&budget).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	} else {
		budget.Amount = input.Amount
		if err := database.DB.Save(&budget).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}

	spent, err := monthlyTotal(uid, budget.Year, budget.Month)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	status := 200
	if created {
		status = 201
	}
	c.JSON(status, budgetView{Budget: budget, Usage: finance.Usage(budget.Amount, spent)})
}

// GET /v1/budgets/current
//
// An absent budget is "no budget set", not an error: the response carries a
// null budget so callers can render the empty state.
func (s *Server) currentBudget(c *gin.Context) {
	uid := userID(c)

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if y := c.Query("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil {
			year = v
		}
	}
	if m := c.Query("month"); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v >= 1 && v <= 12 {
			month = v
		}
	}

	var budget models.Budget
	err := database.DB.Where("user_id = ? AND month = ? AND year = ?", uid, month, year).
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(200, gin.H{"budget": nil, "month": month, "year": year})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	spent, err := monthlyTotal(uid, year, month)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"budget": budgetView{Budget: budget, Usage: finance.Usage(budget.Amount, spent)},
		"month":  month,
		"year":   year,
	})
}
