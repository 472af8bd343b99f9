package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/config"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/handler"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/middleware"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/repository"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/service"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/cache"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/database"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/email"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/poster"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/qrcode"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/ratelimit"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/storage"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Config'i yükle
	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database + migrations
	db := database.NewDatabase()
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	checkinRepo := repository.NewCheckInRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)

	// Storage service
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService()

	// Önbellek veri deposu hatalarında okuma yollarını ayakta tutar
	memCache := cache.NewMemory()

	// Kayan pencere oran sınırlayıcıları
	regLimiter := ratelimit.New(cfg.Registration.Window, cfg.Registration.Max)
	loginLimiter := ratelimit.New(cfg.Login.Window, cfg.Login.Max)

	// Services
	authService := service.NewAuthService(adminRepo, loginLimiter, zapLogger)
	eventService := service.NewEventService(eventRepo, memCache, zapLogger)
	regService := service.NewRegistrationService(regRepo, eventService, emailService, emailLogRepo, regLimiter, zapLogger)
	checkinService := service.NewCheckInService(checkinRepo, zapLogger)
	sectionService := service.NewSectionService(sectionRepo)

	composer := poster.NewComposer(zapLogger)
	invitationService := service.NewInvitationService(
		composer,
		eventService,
		regService,
		checkinService,
		r2Storage,
		emailService,
		emailLogRepo,
		cfg.EventBaseURL,
		zapLogger,
	)

	qrService := qrcode.NewQRService(cfg.EventBaseURL)
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	eventHandler := handler.NewEventHandler(eventService, sectionService, qrService, validator)
	regHandler := handler.NewRegistrationHandler(regService, validator)
	checkinHandler := handler.NewCheckInHandler(checkinService, validator)
	invitationHandler := handler.NewInvitationHandler(invitationService, validator)
	sectionHandler := handler.NewSectionHandler(sectionService, validator)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024, // arka plan görselleri için
	})

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173"
	}

	// Global Middleware'ler önce tanımlanmalı
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	api.Post("/auth/login", authHandler.Login)
	api.Get("/events/:url", eventHandler.GetLanding)
	api.Post("/events/:url/register", regHandler.Register)
	api.Get("/qr", eventHandler.GetEventQR)

	// Protected routes
	api.Use(middleware.AuthMiddleware(adminRepo))
	{
		events := api.Group("/admin/events")
		events.Post("/", eventHandler.CreateEvent)
		events.Get("/", eventHandler.GetAllEvents)
		events.Get("/:id", eventHandler.GetEvent)
		events.Put("/:id", eventHandler.UpdateEvent)
		events.Delete("/:id", eventHandler.DeleteEvent)

		events.Get("/:id/registrations", regHandler.GetEventRegistrations)
		events.Delete("/:id/registrations/:registrationId", regHandler.DeleteRegistration)
		events.Get("/:id/registrations/export", regHandler.ExportCSV)

		events.Get("/:id/sections", sectionHandler.GetSections)
		events.Put("/:id/sections", sectionHandler.SaveSection)
		events.Delete("/:id/sections/:key", sectionHandler.DeleteSection)

		events.Post("/:id/invitations/generate", invitationHandler.Generate)
		api.Get("/admin/invitations/options", invitationHandler.Options)
		api.Post("/admin/invitations/personalized/:registrationId", invitationHandler.Personalized)

		events.Post("/:id/checkins/scan-in", checkinHandler.ScanIn)
		events.Post("/:id/checkins/scan-out", checkinHandler.ScanOut)
		events.Get("/:id/checkins", checkinHandler.List)
		events.Get("/:id/checkins/stats", checkinHandler.Stats)
		api.Post("/admin/checkins/:recordId/invalidate", checkinHandler.Invalidate)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
