package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"fintrack/internal/ai"
	"fintrack/internal/config"
	"fintrack/internal/database"
	httpserver "fintrack/internal/http"
	"fintrack/internal/models"
	"fintrack/internal/news"
)

func main() {
	_ = godotenv.Load(".env")

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	if err := database.Connect(cfg); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Expense{},
		&models.Budget{},
		&models.Goal{},
		&models.Article{},
	); err != nil {
		logger.Fatalf("Failed to migrate schema: %v", err)
	}

	if err := database.SeedCategories(); err != nil {
		logger.Fatalf("Failed to seed categories: %v", err)
	}

	advisor := ai.NewAdvisor(cfg)
	newsClient := news.NewClient(cfg, logger)

	// Periodic news ingestion; the articles endpoint also fetches lazily
	// when the table is empty.
	if cfg.NewsAPIKey != "" {
		cr := cron.New()
		_, err := cr.AddFunc(cfg.NewsCron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ReqTimeoutSec)*time.Second)
			defer cancel()
			if _, err := newsClient.Refresh(ctx); err != nil {
				logger.WithError(err).Warn("scheduled news refresh failed")
			}
		})
		if err != nil {
			logger.Fatalf("Invalid NEWS_REFRESH_CRON: %v", err)
		}
		cr.Start()
	}

	r := httpserver.NewServer(cfg, logger, advisor, newsClient)
	logger.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
