package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"rbx-staffhub/internal/adapters/http/middleware"
	"rbx-staffhub/internal/adapters/http/routes"
	"rbx-staffhub/internal/adapters/persistence/models"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/config"
	"rbx-staffhub/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "rbx-staffhub/docs" // Swagger docs
)

// @title StaffHub API
// @version 1.0
// @description Staff-management portal for a Roblox group: profile-code verification, transfer/LOA requests, notifications.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1
// @schemes https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Start the expired-session sweeper
	sessionRepo := repositories.NewSessionRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	sessionService := services.NewSessionService(sessionRepo, accountRepo, cfg.Session.TTLDays)
	sweeper := services.NewSweeperService(sessionService)
	sweeper.Start()
	defer sweeper.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "StaffHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
