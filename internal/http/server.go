package http

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"fintrack/internal/ai"
	"fintrack/internal/config"
	"fintrack/internal/news"
)

//go:embed schemas/expense.schema.json
var expenseSchemaJSON string

type Server struct {
	cfg           *config.Config
	log           *logrus.Logger
	expenseSchema *gojsonschema.Schema
	advisor       *ai.Advisor
	news          *news.Client
}

func NewServer(cfg *config.Config, log *logrus.Logger, advisor *ai.Advisor, newsClient *news.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(logging(log))

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(expenseSchemaJSON))
	if err != nil {
		panic(err)
	}

	s := &Server{cfg: cfg, log: log, expenseSchema: schema, advisor: advisor, news: newsClient}

	r.POST("/v1/auth/register", s.register)
	r.POST("/v1/auth/login", s.login)

	authorized := r.Group("/v1")
	authorized.Use(AuthMiddleware(cfg))
	{
		authorized.POST("/expenses", s.createExpense)
		authorized.GET("/expenses", s.listExpenses)
		authorized.GET("/expenses/:id", s.getExpense)
		authorized.PUT("/expenses/:id", s.updateExpense)
		authorized.DELETE("/expenses/:id", s.deleteExpense)

		authorized.GET("/budgets", s.listBudgets)
		authorized.POST("/budgets", s.upsertBudget)
		authorized.GET("/budgets/current", s.currentBudget)

		authorized.GET("/goals", s.listGoals)
		authorized.POST("/goals", s.createGoal)
		authorized.PUT("/goals/:id", s.updateGoal)
		authorized.DELETE("/goals/:id", s.deleteGoal)
		authorized.POST("/goals/:id/progress", s.addGoalProgress)

		authorized.GET("/categories", s.listCategories)

		authorized.GET("/dashboard", s.dashboard)
		authorized.GET("/reports", s.reports)
		authorized.GET("/export/csv", s.exportCSV)
		authorized.GET("/export/pdf", s.exportPDF)

		authorized.GET("/articles", s.listArticles)
		authorized.POST("/articles", s.createArticle)
		authorized.GET("/articles/:id", s.getArticle)

		authorized.GET("/tips", s.savingsTips)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
