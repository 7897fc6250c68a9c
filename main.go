package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/config"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/handlers"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/middleware"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/repositories"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/pkg/rabbitmq"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database ---
	// TranslateError maps driver-specific unique violations onto
	// gorm.ErrDuplicatedKey so the repositories stay dialect-agnostic.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.StockAlert{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Info("Database connection established")

	// --- RabbitMQ (optional) ---
	// Alert events are best-effort; the service runs fine without a broker.
	var publisher services.AlertPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Warnf("RabbitMQ unavailable, stock alert events disabled: %v", err)
		} else {
			publisher = mqClient
			log.Info("RabbitMQ client connected, stock_alerts queue declared")
		}
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	alertRepo := repositories.NewGORMStockAlertRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	alertService := services.NewAlertService(alertRepo, productRepo, publisher, cfg.LowStockThreshold, log)
	productService := services.NewProductService(productRepo, categoryRepo, alertService, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	reportService := services.NewReportService(productRepo, categoryRepo, cfg.LowStockThreshold, log)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	adminService := services.NewAdminService(db, categoryRepo, productRepo, log)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService, log)
	categoryHandler := handlers.NewCategoryHandler(categoryService, log)
	alertHandler := handlers.NewAlertHandler(alertService, log)
	reportHandler := handlers.NewReportHandler(reportService, log)
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, log)
	adminHandler := handlers.NewAdminHandler(adminService, log)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
	}))

	api := app.Group("/api")
	healthHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	alertHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	admin := api.Group("/admin", middleware.AuthRequired(authService))
	adminHandler.RegisterRoutes(admin)

	// --- Start & graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("Starting server on %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during Fiber shutdown: %v", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Errorf("Error closing RabbitMQ client: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Errorf("Error closing database: %v", err)
		}
	}
	log.Info("Server gracefully stopped")
}
