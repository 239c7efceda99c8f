package routes

import (
	"github.com/gofiber/fiber/v2"

	"Scanstock-Backend/internal/api/handlers"
	"Scanstock-Backend/internal/middleware"
	"Scanstock-Backend/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	ScanHandler      handlers.ScanHandler
	InventoryHandler handlers.InventoryHandler
	RecipeHandler    handlers.RecipeHandler
	SettingsHandler  handlers.SettingsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Scans()
	c.Inventory()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/anonymous", c.UserHandler.SignInAnonymous)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

// Scans carries an optional session: unauthenticated writes route to the
// local store when policy allows, so the auth middleware must not reject
// them outright. Sync is the exception, it moves local records into a
// per-user remote collection and demands a session.
func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.OptionalAuthMiddleware(c.JWTService))

	scans.Post("", c.ScanHandler.RecordScan)
	scans.Post("/file", c.ScanHandler.RecordFileScan)
	scans.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ScanHandler.UpdateScan)
	scans.Post("/sync", c.Middleware.AuthMiddleware(c.JWTService), c.ScanHandler.SyncPendingScans)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.OptionalAuthMiddleware(c.JWTService))

	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)
	inventory.Get("", c.InventoryHandler.GetInventory)
	inventory.Get("/:value", c.InventoryHandler.GetItemDetail)

	c.App.Get("/api/v1/recipes/suggestions",
		c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetSuggestions)

	// Scanner settings live in the local store and need no session.
	c.App.Get("/api/v1/settings", c.SettingsHandler.GetSettings)
	c.App.Put("/api/v1/settings", c.SettingsHandler.UpdateSettings)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	// Passthrough proxy; preflight handled inside the handler so both verbs
	// share the permissive headers.
	c.App.Get("/api/recipes", c.RecipeHandler.ProxyRecipes)
	c.App.Options("/api/recipes", c.RecipeHandler.ProxyRecipes)
}
