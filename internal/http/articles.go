package http

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fintrack/internal/database"
	"fintrack/internal/models"
)

const newsListLimit = 10

// GET /v1/articles
func (s *Server) listArticles(c *gin.Context) {
	categoryFilter := strings.TrimSpace(c.Query("category"))
	search := strings.TrimSpace(c.Query("search"))
	showType := c.DefaultQuery("type", "all") // all, article, news

	// When no news has been ingested yet, try once now so the page is not
	// empty on a fresh install. Failure is not fatal.
	if showType != "article" {
		var newsCount int64
		database.DB.Model(&models.Article{}).Where("type = ?", models.ArticleTypeNews).Count(&newsCount)
		if newsCount == 0 && s.news != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(s.cfg.ReqTimeoutSec)*time.Second)
			if _, err := s.news.Refresh(ctx); err != nil {
				s.log.WithError(err).Warn("news refresh failed")
			}
			cancel()
		}
	}

	articleQuery := database.DB.Where("type = ?", models.ArticleTypeArticle).
		Order("is_featured desc, created_at desc")
	newsQuery := database.DB.Where("type = ?", models.ArticleTypeNews).
		Order("created_at desc")

	if categoryFilter != "" {
		articleQuery = articleQuery.Where("category ILIKE ?", "%"+categoryFilter+"%")
	}
	if search != "" {
		like := "%" + search + "%"
		match := "title ILIKE ? OR content ILIKE ? OR summary ILIKE ?"
		articleQuery = articleQuery.Where(match, like, like, like)
		newsQuery = newsQuery.Where(match, like, like, like)
	}

	var articles []models.Article
	var newsArticles []models.Article
	if showType != "news" {
		if err := articleQuery.Find(&articles).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}
	if showType != "article" {
		if err := newsQuery.Limit(newsListLimit).Find(&newsArticles).Error; err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}

	// Featured user articles lead, capped at three.
	var featured, others []models.Article
	for _, a := range articles {
		if a.IsFeatured && len(featured) < 3 {
			featured = append(featured, a)
		} else {
			others = append(others, a)
		}
	}

	var categories []string
	database.DB.Model(&models.Article{}).
		Where("type = ? AND category <> ''", models.ArticleTypeArticle).
		Distinct("category").
		Pluck("category", &categories)

	c.JSON(200, gin.H{
		"featured_articles": featured,
		"articles":          others,
		"news_articles":     newsArticles,
		"categories":        categories,
		"current_category":  categoryFilter,
		"search_query":      search,
		"show_type":         showType,
	})
}

// POST /v1/articles
func (s *Server) createArticle(c *gin.Context) {
	uid := userID(c)

	var input struct {
		Title    string `json:"title" binding:"required,max=300"`
		Summary  string `json:"summary" binding:"max=500"`
		Content  string `json:"content" binding:"required"`
		Category string `json:"category" binding:"max=100"`
		Author   string `json:"author" binding:"max=200"`
		ImageURL string `json:"image_url" binding:"omitempty,url,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	article := models.Article{
		UserID:   &uid,
		Type:     models.ArticleTypeArticle,
		Title:    input.Title,
		Summary:  input.Summary,
		Content:  input.Content,
		Category: input.Category,
		Author:   input.Author,
		ImageURL: input.ImageURL,
	}
	if err := database.DB.Create(&article).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, article)
}

// GET /v1/articles/:id
func (s *Server) getArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	// Increment before the read as a single UPDATE expression, so
	// concurrent views cannot lose counts to read-modify-write overlap.
	if err := database.DB.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	var article models.Article
	if err := database.DB.First(&article, id).Error; err != nil {
		c.JSON(404, gin.H{"error": "article not found"})
		return
	}

	var related []models.Article
	database.DB.Where("type = ? AND category = ? AND id <> ?", article.Type, article.Category, article.ID).
		Order("created_at desc").
		Limit(3).
		Find(&related)

	c.JSON(200, gin.H{
		"article":          article,
		"related_articles": related,
	})
}
