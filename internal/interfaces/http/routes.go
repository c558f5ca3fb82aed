package http

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/grn-engineering/smartvend/backend/internal/interfaces/http/handlers"
	"github.com/grn-engineering/smartvend/backend/internal/interfaces/http/middleware"
	"github.com/grn-engineering/smartvend/backend/internal/pkg/config"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
)

// Router holds all handlers and middleware
type Router struct {
	app                *fiber.App
	authHandler        *handlers.AuthHandler
	dashboardHandler   *handlers.DashboardHandler
	inventoryHandler   *handlers.InventoryHandler
	analyticsHandler   *handlers.AnalyticsHandler
	maintenanceHandler *handlers.MaintenanceHandler
	userHandler        *handlers.UserHandler
	settingsHandler    *handlers.SettingsHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	inventoryHandler *handlers.InventoryHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	userHandler *handlers.UserHandler,
	settingsHandler *handlers.SettingsHandler,
	authMiddleware *middleware.AuthMiddleware,
	serverConfig *config.ServerConfig,
) *Router {
	isProd := os.Getenv("ENV") == "production" || os.Getenv("ENVIRONMENT") == "production"

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  time.Duration(serverConfig.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(serverConfig.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(serverConfig.IdleTimeout) * time.Second,
		ServerHeader: "SmartVend360",
		AppName:      "SmartVend360 API",
	})

	// Global middleware - order matters!
	app.Use(recover.New())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if !isProd {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path} - ${latency}\n",
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format:     "${status} ${method} ${path} ${latency}\n",
			TimeFormat: "15:04:05",
			Output:     os.Stdout,
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	return &Router{
		app:                app,
		authHandler:        authHandler,
		dashboardHandler:   dashboardHandler,
		inventoryHandler:   inventoryHandler,
		analyticsHandler:   analyticsHandler,
		maintenanceHandler: maintenanceHandler,
		userHandler:        userHandler,
		settingsHandler:    settingsHandler,
		authMiddleware:     authMiddleware,
	}
}

// SetupRoutes configures all routes. Every data section is gated by
// the route guard via RequireSection, the same permission table the
// navigation menu reads.
func (r *Router) SetupRoutes() {
	api := r.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
		})
	})

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/login", r.authHandler.Login)
	auth.Post("/logout", r.authHandler.Logout)

	// Protected routes
	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	protected.Get("/auth/me", r.authHandler.Me)
	protected.Get("/auth/sections", r.authHandler.Sections)

	// Dashboard
	dashboard := protected.Group("/dashboard", r.authMiddleware.RequireSection(rbac.SectionDashboard))
	dashboard.Get("/", r.dashboardHandler.Summary)
	dashboard.Get("/machines", r.dashboardHandler.Machines)
	dashboard.Get("/live", r.dashboardHandler.Live)

	// Inventory
	inventory := protected.Group("/inventory", r.authMiddleware.RequireSection(rbac.SectionInventory))
	inventory.Get("/", r.inventoryHandler.Stocks)
	inventory.Get("/restock", r.inventoryHandler.Restock)
	inventory.Get("/catalogue", r.inventoryHandler.Catalogue)

	// Analytics
	analytics := protected.Group("/analytics", r.authMiddleware.RequireSection(rbac.SectionAnalytics))
	analytics.Get("/revenue", r.analyticsHandler.Revenue)
	analytics.Get("/payments", r.analyticsHandler.Payments)
	analytics.Get("/top-machines", r.analyticsHandler.TopMachines)
	analytics.Get("/transactions", r.analyticsHandler.Transactions)

	// Maintenance
	maintenance := protected.Group("/maintenance", r.authMiddleware.RequireSection(rbac.SectionMaintenance))
	maintenance.Get("/", r.maintenanceHandler.List)
	maintenance.Get("/summary", r.maintenanceHandler.Summary)
	maintenance.Put("/:id/status", r.maintenanceHandler.UpdateStatus)

	// Users (Admin only via the permission table)
	users := protected.Group("/users", r.authMiddleware.RequireSection(rbac.SectionUsers))
	users.Get("/", r.userHandler.List)
	users.Post("/", r.userHandler.Create)
	users.Put("/:id", r.userHandler.Update)
	users.Delete("/:id", r.userHandler.Delete)

	// Settings (Admin only via the permission table)
	settings := protected.Group("/settings", r.authMiddleware.RequireSection(rbac.SectionSettings))
	settings.Get("/", r.settingsHandler.Get)
	settings.Put("/", r.settingsHandler.Update)
	settings.Post("/language/toggle", r.settingsHandler.ToggleLanguage)
	settings.Post("/theme/toggle", r.settingsHandler.ToggleTheme)
}

// Start starts the HTTP server
func (r *Router) Start(addr string) error {
	return r.app.Listen(addr)
}

// Shutdown gracefully shuts down the server
func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}

// App exposes the underlying fiber app for tests
func (r *Router) App() *fiber.App {
	return r.app
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
