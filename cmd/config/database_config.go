package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"Scanstock-Backend/internal/utils"
)

// ConnectDB opens the remote store. When the database settings still carry
// placeholder values the app runs in local-only mode and (nil, nil) is
// returned; callers treat a nil handle as "remote unconfigured".
func ConnectDB() (*gorm.DB, error) {
	if !utils.IsRemoteConfigured() {
		log.Println("remote store not configured, running in local-only mode")
		return nil, nil
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
