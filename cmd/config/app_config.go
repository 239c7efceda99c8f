package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"Scanstock-Backend/internal/api/handlers"
	"Scanstock-Backend/internal/api/routes"
	"Scanstock-Backend/internal/middleware"
	"Scanstock-Backend/internal/utils"
	"Scanstock-Backend/pkg/inventory"
	"Scanstock-Backend/pkg/jwt"
	"Scanstock-Backend/pkg/localstore"
	"Scanstock-Backend/pkg/product"
	"Scanstock-Backend/pkg/recipe"
	"Scanstock-Backend/pkg/scan"
	"Scanstock-Backend/pkg/user"
)

// NewApp wires the application. A nil db is legal: the app then serves
// local-only scans until the remote store is configured.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// local store
	storePath := utils.GetConfig("LOCAL_STORE_PATH")
	if storePath == "" {
		storePath = "./data/scans.db"
	}
	if err := os.MkdirAll(filepath.Dir(storePath), os.ModePerm); err != nil {
		log.Fatalf("error creating data directory: %v", err)
	}
	localStore, err := localstore.New(storePath)
	if err != nil {
		log.Fatalf("error opening local store: %v", err)
	}

	// Repository
	var (
		userRepository user.UserRepository
		scanRepository scan.ScanRepository
	)
	if db != nil {
		userRepository = user.NewUserRepository(db)
		scanRepository = scan.NewScanRepository(db)
	}

	// external collaborators
	lookupClient := product.NewLookupClient(utils.GetConfig("PRODUCT_LOOKUP_URL"))
	barcodeDecoder := scan.NewBarcodeDecoder(utils.GetConfig("BARCODE_DECODER_URL"))

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	inventoryService := inventory.NewInventoryService(scanRepository, localStore, lookupClient, barcodeDecoder)
	recipeService := recipe.NewRecipeService(utils.GetConfig("RECIPE_UPSTREAM_URL"), inventoryService)

	// Handler
	userHandler := handlers.NewUserHandler(userService)
	scanHandler := handlers.NewScanHandler(inventoryService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	settingsHandler := handlers.NewSettingsHandler(localStore)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		ScanHandler:      scanHandler,
		InventoryHandler: inventoryHandler,
		RecipeHandler:    recipeHandler,
		SettingsHandler:  settingsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
