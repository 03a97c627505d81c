package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"creatorpay-be-svc/internal/middleware"
	"creatorpay-be-svc/internal/service"
	"creatorpay-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authMiddleware gin.HandlerFunc,
	companyService service.CompanyService,
	nicheService service.NicheService,
	creatorService service.CreatorService,
	tierService service.TierService,
	videoService service.VideoService,
	paymentService service.PaymentService,
	feedbackService service.FeedbackService,
	dashboardService service.DashboardService,
	metricsService service.MetricsService,
	logger *logger.Logger,
) {
	// Initialize handlers
	companyHandler := NewCompanyHandler(companyService, logger)
	nicheHandler := NewNicheHandler(nicheService, logger)
	creatorHandler := NewCreatorHandler(creatorService, logger)
	tierHandler := NewTierHandler(tierService, logger)
	videoHandler := NewVideoHandler(videoService, logger)
	paymentHandler := NewPaymentHandler(paymentService, logger)
	feedbackHandler := NewFeedbackHandler(feedbackService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	metricsHandler := NewMetricsHandler(metricsService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Everything below requires an authenticated profile
		v1.Use(authMiddleware)

		// Company routes
		companies := v1.Group("/companies")
		{
			companies.GET("/:id", companyHandler.GetCompany)
			companies.PUT("/:id/rates", middleware.RequireCompanyAdmin(), companyHandler.UpdateRates)
		}

		// Niche routes
		niches := v1.Group("/niches")
		{
			niches.GET("", nicheHandler.ListNiches)
			niches.POST("", nicheHandler.CreateNiche)
			niches.GET("/:id", nicheHandler.GetNiche)
			niches.PUT("/:id", nicheHandler.UpdateNiche)
			niches.DELETE("/:id", nicheHandler.DeleteNiche)
		}

		// Creator routes
		creators := v1.Group("/creators")
		{
			creators.GET("", creatorHandler.ListCreators)
			creators.POST("", creatorHandler.CreateCreator)
			creators.GET("/:id", creatorHandler.GetCreator)
			creators.PUT("/:id", creatorHandler.UpdateCreator)
			creators.DELETE("/:id", creatorHandler.DeleteCreator)
			creators.GET("/:id/videos", videoHandler.ListCreatorVideos)
		}

		// Payment tier routes
		tiers := v1.Group("/tiers")
		{
			tiers.GET("", tierHandler.ListTiers)
			tiers.POST("", tierHandler.CreateTier)
			tiers.GET("/:id", tierHandler.GetTier)
			tiers.PUT("/:id", tierHandler.UpdateTier)
			tiers.DELETE("/:id", tierHandler.DeleteTier)
		}

		// Video routes
		videos := v1.Group("/videos")
		{
			videos.GET("", videoHandler.ListVideos)
			videos.POST("", videoHandler.SubmitVideo)
			videos.GET("/:id", videoHandler.GetVideo)
			videos.DELETE("/:id", videoHandler.DeleteVideo)
			videos.PUT("/:id/status", videoHandler.UpdateStatus)
			videos.PUT("/:id/views", videoHandler.UpdateViews)

			// Payment engine endpoints
			videos.GET("/:id/payments", paymentHandler.GetPaymentSummary)
			videos.PUT("/:id/payments/base-cpm", middleware.RequireCompanyAdmin(), paymentHandler.SetBaseCPMPaid)

			// Feedback endpoints
			videos.GET("/:id/feedback", feedbackHandler.ListFeedback)
			videos.POST("/:id/feedback", feedbackHandler.CreateFeedback)
		}

		// Tier payment routes
		tierPayments := v1.Group("/tier-payments")
		{
			tierPayments.PUT("/:id/paid", middleware.RequireCompanyAdmin(), paymentHandler.SetTierPaid)
		}

		// Feedback routes
		feedback := v1.Group("/feedback")
		{
			feedback.DELETE("/:id", feedbackHandler.DeleteFeedback)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/creators/:id/totals", dashboardHandler.GetCreatorTotals)
			dashboard.GET("/companies/:id/totals", dashboardHandler.GetCompanyTotals)
			dashboard.GET("/companies/:id/export", dashboardHandler.ExportPayments)
		}

		// Metrics routes
		metrics := v1.Group("/metrics")
		{
			metrics.POST("/refresh", middleware.RequireCompanyAdmin(), metricsHandler.RefreshMetrics)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "CreatorPay Backend Service",
	})
}
