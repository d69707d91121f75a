package http

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"fintrack/internal/database"
	"fintrack/internal/models"
)

type expenseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	CategoryID  *uint   `json:"category_id"`
}

// POST /v1/expenses
func (s *Server) createExpense(c *gin.Context) {
	uid := userID(c)

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(400, gin.H{"error": "failed to read body"})
		return
	}

	res, err := s.expenseSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_json"})
		return
	}
	if !res.Valid() {
		details := []string{}
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		c.JSON(422, gin.H{"error": "schema_invalid", "details": details})
		return
	}

	var input expenseInput
	if err := json.Unmarshal(body, &input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if input.CategoryID != nil {
		var cat models.Category
		if err := database.DB.First(&cat, *input.CategoryID).Error; err != nil {
			c.JSON(422, gin.H{"error": "unknown_category"})
			return
		}
	}

	expense := models.Expense{
		UserID:      uid,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Preload("Category").First(&expense, expense.ID).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, expense)
}

// GET /v1/expenses
func (s *Server) listExpenses(c *gin.Context) {
	uid := userID(c)

	var expenses []models.Expense
	query := database.DB.Preload("Category").
		Where("user_id = ?", uid).
		Order("date desc, created_at desc")

	if catStr := strings.TrimSpace(c.Query("category_id")); catStr != "" {
		if catID, err := strconv.ParseUint(catStr, 10, 32); err == nil {
			query = query.Where("category_id = ?", uint(catID))
		}
	}

	if minStr := c.Query("min_amount"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			query = query.Where("amount >= ?", min)
		}
	}

	if maxStr := c.Query("max_amount"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			query = query.Where("amount <= ?", max)
		}
	}

	if start := c.Query("start_date"); start != "" {
		query = query.Where("date >= ?", start)
	}

	if end := c.Query("end_date"); end != "" {
		query = query.Where("date <= ?", end)
	}

	if err := query.Find(&expenses).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	c.JSON(200, gin.H{
		"expenses": expenses,
		"count":    len(expenses),
		"total":    total,
	})
}

// GET /v1/expenses/:id
func (s *Server) getExpense(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	var expense models.Expense
	if err := database.DB.Preload("Category").
		Where("id = ? AND user_id = ?", id, uid).
		First(&expense).Error; err != nil {
		c.JSON(404, gin.H{"error": "expense not found"})
		return
	}

	c.JSON(200, expense)
}

// PUT /v1/expenses/:id
func (s *Server) updateExpense(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).First(&expense).Error; err != nil {
		c.JSON(404, gin.H{"error": "expense not found"})
		return
	}

	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if v, ok := input["title"].(string); ok && v != "" {
		expense.Title = v
	}
	if v, ok := input["description"].(string); ok {
		expense.Description = v
	}
	if v, ok := input["amount"].(float64); ok {
		if v <= 0 {
			c.JSON(422, gin.H{"error": "amount must be positive"})
			return
		}
		expense.Amount = v
	}
	if v, ok := input["date"].(string); ok && v != "" {
		expense.Date = v
	}
	if raw, present := input["category_id"]; present {
		if raw == nil {
			expense.CategoryID = nil
		} else if v, ok := raw.(float64); ok {
			catID := uint(v)
			var cat models.Category
			if err := database.DB.First(&cat, catID).Error; err != nil {
				c.JSON(422, gin.H{"error": "unknown_category"})
				return
			}
			expense.CategoryID = &catID
		}
	}

	if err := database.DB.Save(&expense).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Preload("Category").First(&expense, expense.ID).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, expense)
}

// DELETE /v1/expenses/:id
func (s *Server) deleteExpense(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Expense{}).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "expense deleted"})
}

// GET /v1/categories
func (s *Server) listCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Order("name").Find(&categories).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, categories)
}
