package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

type Config struct {
	Port           string
	DatabaseURL    string
	AdminPassword  string
	JWTSecret      string
	AllowedOrigins []string
}

// Load reads .env (when present) and the environment. DATABASE_URL is
// optional: without it the server runs on the in-memory store.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Infof("no .env file found, reading environment variables")
	}

	origins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Port:           getEnv("PORT", "4000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production"),
		AllowedOrigins: origins,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
