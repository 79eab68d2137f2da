package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nanao-dev/bingo-party-backend/store"
	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

// SetupDatabase connects to postgres and runs migrations.
func SetupDatabase(databaseURL string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	if err := store.AutoMigrate(db); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	logger.Infof("database connected and migrated")
	return db
}
