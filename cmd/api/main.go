package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Sojagracesaju/pocketkash/internal/advisor"
	"github.com/Sojagracesaju/pocketkash/internal/config"
	"github.com/Sojagracesaju/pocketkash/internal/database"
	"github.com/Sojagracesaju/pocketkash/internal/engine"
	"github.com/Sojagracesaju/pocketkash/internal/handlers"
	"github.com/Sojagracesaju/pocketkash/internal/logger"
	"github.com/Sojagracesaju/pocketkash/internal/middleware"
	"github.com/Sojagracesaju/pocketkash/internal/services"
	"github.com/Sojagracesaju/pocketkash/internal/validator"

	_ "github.com/Sojagracesaju/pocketkash/internal/docs" // Import swagger docs
)

// @title           PocketKash API
// @version         1.0
// @description     PocketKash is a personal finance tracker for students: record income and expenses, understand spending behaviour, and stay inside daily, weekly, and monthly budgets.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators with the binding engine
	validator.Register()

	// Initialize the engine and services
	db := dbManager.DB()
	eng := engine.New(engine.Config{SmallExpenseThreshold: appConfig.SmallExpenseThreshold})
	adviceGen := advisor.NewGeminiAdvisor(appConfig.GeminiAPIKey, appConfig.GeminiModel, eng)

	transactionService := services.NewTransactionService(db)
	profileService := services.NewProfileService(db)
	reportService := services.NewReportService(transactionService, profileService, eng, adviceGen)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	profileHandler := handlers.NewProfileHandler(profileService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Profile routes
	v1.GET("/profile", profileHandler.GetProfile)
	v1.PUT("/profile", profileHandler.SaveProfile)

	// Report routes
	v1.GET("/summary", reportHandler.GetSummary)
	v1.GET("/insights", reportHandler.GetInsights)
	v1.GET("/overview/:window", reportHandler.GetOverview)
	v1.GET("/advice", reportHandler.GetAdvice)

	log.Infof("Starting PocketKash backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
