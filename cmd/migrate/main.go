package main

import (
	"github.com/nanao-dev/bingo-party-backend/config"
	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		logger.Fatalf("DATABASE_URL is required")
	}
	config.SetupDatabase(cfg.DatabaseURL) // connects + migrates
	logger.Infof("database migration completed successfully")
}
