package routes

import (
	"rbx-staffhub/internal/adapters/http/handlers"
	"rbx-staffhub/internal/adapters/http/middleware"
	"rbx-staffhub/internal/adapters/persistence/repositories"
	"rbx-staffhub/internal/config"
	"rbx-staffhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	codeRepo := repositories.NewVerificationCodeRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	transferRepo := repositories.NewTransferRequestRepository(db)
	loaRepo := repositories.NewLoaRequestRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Initialize services
	gateway := services.NewRobloxService(cfg.Roblox)
	sessionService := services.NewSessionService(sessionRepo, accountRepo, cfg.Session.TTLDays)
	verifyService := services.NewVerificationService(gateway, codeRepo, accountRepo, sessionService, cfg.Roblox.GroupID)
	notifyService := services.NewNotificationService(notificationRepo)
	requestService := services.NewRequestService(transferRepo, loaRepo, notifyService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(verifyService, sessionService, cfg)
	transferHandler := handlers.NewTransferHandler(requestService)
	loaHandler := handlers.NewLoaHandler(requestService)
	notificationHandler := handlers.NewNotificationHandler(notifyService)
	adminHandler := handlers.NewAdminHandler(requestService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	requireSession := middleware.AuthMiddleware(sessionService, cfg)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/generate-code", middleware.StrictRateLimiter(), authHandler.GenerateCode)
	authRoutes.Post("/verify", middleware.AuthRateLimiter(), authHandler.Verify)
	authRoutes.Get("/me", requireSession, authHandler.Me)
	authRoutes.Post("/logout", requireSession, authHandler.Logout)

	// Transfer request routes (authenticated)
	transferRoutes := apiV1.Group("/transfer-requests")
	transferRoutes.Use(requireSession)
	transferRoutes.Get("/", transferHandler.ListMine)
	transferRoutes.Post("/", transferHandler.Create)

	// LOA request routes (authenticated)
	loaRoutes := apiV1.Group("/loa-requests")
	loaRoutes.Use(requireSession)
	loaRoutes.Get("/", loaHandler.ListMine)
	loaRoutes.Post("/", loaHandler.Create)

	// Notification routes (authenticated)
	notificationRoutes := apiV1.Group("/notifications")
	notificationRoutes.Use(requireSession)
	notificationRoutes.Get("/", notificationHandler.List)
	notificationRoutes.Patch("/:id/read", notificationHandler.MarkRead)
	notificationRoutes.Post("/mark-all-read", notificationHandler.MarkAllRead)

	// Admin routes (privileged ranks only)
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(requireSession)
	adminRoutes.Use(middleware.PrivilegedOnly())
	adminRoutes.Get("/transfer-requests", adminHandler.ListTransfers)
	adminRoutes.Patch("/transfer-requests/:id", adminHandler.ReviewTransfer)
	adminRoutes.Get("/loa-requests", adminHandler.ListLoas)
	adminRoutes.Patch("/loa-requests/:id", adminHandler.ReviewLoa)
}
