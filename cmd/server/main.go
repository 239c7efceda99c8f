package main

import (
	"log"
	"os"

	"Scanstock-Backend/cmd/config"
	migration "Scanstock-Backend/cmd/database/migrate"
	"Scanstock-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if db != nil {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
