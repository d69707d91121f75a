package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	AllowOrigins string
	LogLevel     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret   string
	TokenTTLHrs int

	OpenAIKey      string
	OpenAIBaseURL  string
	OpenAILlmModel string

	NewsAPIKey     string
	NewsAPIBaseURL string
	NewsCron       string

	ReqTimeoutSec int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),
		LogLevel:     getenv("LOG_LEVEL", "info"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "fintrack"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret:   getenv("JWT_SECRET", ""),
		TokenTTLHrs: atoi("TOKEN_TTL_HOURS", 24),

		OpenAIKey:      getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getenv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAILlmModel: getenv("OPENAI_LLM_MODEL", "gpt-4o-mini"),

		NewsAPIKey:     getenv("NEWS_API_KEY", ""),
		NewsAPIBaseURL: getenv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
		NewsCron:       getenv("NEWS_REFRESH_CRON", "0 */6 * * *"),

		ReqTimeoutSec: atoi("REQUEST_TIMEOUT_SECONDS", 30),
	}
}
