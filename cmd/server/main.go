package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"creatorpay-be-svc/docs"
	"creatorpay-be-svc/internal/config"
	"creatorpay-be-svc/internal/database"
	"creatorpay-be-svc/internal/handler"
	"creatorpay-be-svc/internal/middleware"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/internal/scheduler"
	"creatorpay-be-svc/internal/scraper"
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
)

// @title CreatorPay Backend Service API
// @version 1.0
// @description RESTful API for multi-tenant creator payment management
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "CreatorPay Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for multi-tenant creator payment management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting CreatorPay Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db.DB)
	nicheRepo := repository.NewNicheRepository(db.DB)
	creatorRepo := repository.NewCreatorRepository(db.DB)
	tierRepo := repository.NewPaymentTierRepository(db.DB)
	videoRepo := repository.NewVideoRepository(db.DB)
	tierPaymentRepo := repository.NewTierPaymentRepository(db.DB)
	profileRepo := repository.NewProfileRepository(db.DB)
	feedbackRepo := repository.NewFeedbackRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	scraperClient := scraper.NewBrightDataClient(&cfg.Scraper, appLogger)
	companyService := service.NewCompanyService(companyRepo)
	tierService := service.NewTierService(tierRepo, tierPaymentRepo, creatorRepo, videoRepo, cfg.Payments.PreservePaidTierHistory, appLogger)
	nicheService := service.NewNicheService(nicheRepo, creatorRepo, tierService, appLogger)
	creatorService := service.NewCreatorService(creatorRepo, tierService, appLogger)
	videoService := service.NewVideoService(videoRepo, creatorRepo, tierService, appLogger)
	paymentService := service.NewPaymentService(videoRepo, tierPaymentRepo, creatorRepo, nicheRepo, companyRepo, appLogger)
	feedbackService := service.NewFeedbackService(feedbackRepo, videoRepo)
	dashboardService := service.NewDashboardService(creatorRepo, videoRepo, tierPaymentRepo, dashboardRepo, appLogger)
	metricsService := service.NewMetricsService(videoRepo, creatorRepo, tierService, scraperClient, cfg.Scheduler.MetricsMaxAgeDays, cfg.Scheduler.MetricsBatchLimit, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	authMiddleware := middleware.Auth(cfg.JWT.Secret, profileRepo)
	handler.SetupRoutes(router, authMiddleware, companyService, nicheService, creatorService, tierService, videoService, paymentService, feedbackService, dashboardService, metricsService, appLogger)

	// Start the metrics refresh scheduler
	metricsScheduler := scheduler.NewMetricsScheduler(metricsService, schedulerLogRepo, appLogger, cfg.Scheduler.MetricsCronExpression)
	if err := metricsScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start metrics scheduler")
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop background jobs before closing the database
	metricsScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
