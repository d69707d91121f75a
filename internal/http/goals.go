package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fintrack/internal/database"
	"fintrack/internal/finance"
	"fintrack/internal/models"
)

type goalView struct {
	models.Goal
	Progress finance.GoalProgress `json:"progress"`
}

// GET /v1/goals
func (s *Server) listGoals(c *gin.Context) {
	uid := userID(c)

	var goals []models.Goal
	if err := database.DB.Where("user_id = ?", uid).
		Order("created_at desc").
		Find(&goals).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	views := make([]goalView, 0, len(goals))
	var active, completed int
	var totalTarget, totalSaved float64
	for _, g := range goals {
		views = append(views, goalView{Goal: g, Progress: finance.Progress(g.TargetAmount, g.CurrentAmount)})
		switch g.Status {
		case models.GoalActive:
			active++
		case models.GoalCompleted:
			completed++
		}
		totalTarget += g.TargetAmount
		totalSaved += g.CurrentAmount
	}

	overall := finance.Progress(totalTarget, totalSaved)

	c.JSON(200, gin.H{
		"goals":            views,
		"total_goals":      len(goals),
		"active_goals":     active,
		"completed_goals":  completed,
		"total_target":     totalTarget,
		"total_saved":      totalSaved,
		"overall_progress": overall.Percent,
	})
}

// POST /v1/goals
func (s *Server) createGoal(c *gin.Context) {
	uid := userID(c)

	var input struct {
		Name          string  `json:"name" binding:"required,max=200"`
		Description   string  `json:"description"`
		TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
		CurrentAmount float64 `json:"current_amount" binding:"gte=0"`
		TargetDate    *string `json:"target_date"`
		Icon          string  `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	goal := models.Goal{
		UserID:        uid,
		Name:          input.Name,
		Description:   input.Description,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		TargetDate:    input.TargetDate,
		Status:        models.GoalActive,
		Icon:          input.Icon,
	}
	if goal.Icon == "" {
		goal.Icon = "🎯"
	}
	// A goal created already at target starts out completed.
	if goal.CurrentAmount >= goal.TargetAmount {
		goal.Status = models.GoalCompleted
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, goalView{Goal: goal, Progress: finance.Progress(goal.TargetAmount, goal.CurrentAmount)})
}

// PUT /v1/goals/:id
func (s *Server) updateGoal(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).First(&goal).Error; err != nil {
		c.JSON(404, gin.H{"error": "goal not found"})
		return
	}

	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if v, ok := input["name"].(string); ok && v != "" {
		goal.Name = v
	}
	if v, ok := input["description"].(string); ok {
		goal.Description = v
	}
	if v, ok := input["target_amount"].(float64); ok {
		if v <= 0 {
			c.JSON(422, gin.H{"error": "target_amount must be positive"})
			return
		}
		goal.TargetAmount = v
	}
	if v, ok := input["current_amount"].(float64); ok {
		if v < 0 {
			c.JSON(422, gin.H{"error": "current_amount must not be negative"})
			return
		}
		goal.CurrentAmount = v
	}
	if v, ok := input["target_date"].(string); ok && v != "" {
		goal.TargetDate = &v
	}
	if v, ok := input["icon"].(string); ok && v != "" {
		goal.Icon = v
	}
	if v, ok := input["status"].(string); ok {
		switch models.GoalStatus(v) {
		case models.GoalActive, models.GoalPaused, models.GoalCompleted:
			goal.Status = models.GoalStatus(v)
		default:
			c.JSON(422, gin.H{"error": "invalid status"})
			return
		}
	}

	// An edit that reaches the target completes the goal; one that drops
	// below it does not revert a completed goal.
	if goal.CurrentAmount >= goal.TargetAmount && goal.Status != models.GoalCompleted {
		goal.Status = models.GoalCompleted
	}

	if err := database.DB.Save(&goal).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, goalView{Goal: goal, Progress: finance.Progress(goal.TargetAmount, goal.CurrentAmount)})
}

// DELETE /v1/goals/:id
func (s *Server) deleteGoal(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Goal{}).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "goal deleted"})
}

// POST /v1/goals/:id/progress
//
// Runs in a transaction with a row lock so two concurrent deposits cannot
// lose each other's increment.
func (s *Server) addGoalProgress(c *gin.Context) {
	uid := userID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var goal models.Goal
	var justCompleted bool
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, uid).
			First(&goal).Error; err != nil {
			return err
		}
		justCompleted = finance.ApplyProgress(&goal, input.Amount)
		return tx.Save(&goal).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(404, gin.H{"error": "goal not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if justCompleted {
		s.log.WithFields(map[string]interface{}{"goal": goal.ID, "user": uid}).Info("goal completed")
	}

	progress := finance.Progress(goal.TargetAmount, goal.CurrentAmount)
	c.JSON(200, gin.H{
		"success":             true,
		"current_amount":      goal.CurrentAmount,
		"progress_percentage": progress.Percent,
		"is_completed":        progress.Completed,
		"status":              goal.Status,
	})
}
