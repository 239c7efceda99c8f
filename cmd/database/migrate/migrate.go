package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"Scanstock-Backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ScanRecord{}); err != nil {
		log.Fatalf("Error migrating scan record database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
