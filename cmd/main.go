package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"fittrack/database"
	"fittrack/docs"
	"fittrack/internal/cache"
	"fittrack/internal/controllers"
	"fittrack/internal/repository"
	"fittrack/internal/services"
	"fittrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "FitTrack API"
	docs.SwaggerInfo.Description = "Nutrition and training metrics API: profiles, diet targets, food logs and period summaries."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewProfileRepository(database.DB)
	progressRepo := repository.NewProgressRepository(database.DB)
	foodLogRepo := repository.NewFoodLogRepository(database.DB)
	dietTargetRepo := repository.NewDietTargetRepository(database.DB)

	// Redis is optional: summaries fall back to computing from the store.
	var redisClient *cache.RedisClient
	if os.Getenv("REDIS_URL") != "" {
		client, err := cache.NewRedisClient()
		if err != nil {
			log.Printf("Warning: Redis unavailable, summaries will not be cached: %v", err)
		} else {
			redisClient = client
			defer redisClient.Close()
			log.Println("Connected to Redis successfully")
		}
	}

	// Initialize services
	metricsService := services.NewMetricsService(userRepo, profileRepo, progressRepo)
	dietTargetService := services.NewDietTargetService(userRepo, profileRepo, progressRepo, dietTargetRepo, redisClient)
	dietService := services.NewDietService(userRepo, foodLogRepo, dietTargetRepo)
	summaryService := services.NewSummaryService(userRepo, foodLogRepo, dietTargetRepo, redisClient)

	// Initialize controllers
	profileController := controllers.NewProfileController(userRepo, profileRepo, metricsService)
	progressController := controllers.NewProgressController(userRepo, progressRepo, redisClient)
	dietController := controllers.NewDietController(dietService, userRepo, foodLogRepo, redisClient)
	dietTargetController := controllers.NewDietTargetController(dietTargetService)
	summaryController := controllers.NewSummaryController(summaryService)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "FitTrack API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"cache":    redisClient != nil,
		})
	})

	routes.RegisterSwaggerRoutes(router)
	routes.RegisterProfileRoutes(router, profileController)
	routes.RegisterProgressRoutes(router, progressController)
	routes.RegisterDietRoutes(router, dietController)
	routes.RegisterDietTargetRoutes(router, dietTargetController)
	routes.RegisterSummaryRoutes(router, summaryController)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	router.GET("/debug/cache", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(200, gin.H{"cache_enabled": false})
			return
		}
		status, err := redisClient.GetStatus()
		if err != nil {
			c.JSON(500, gin.H{
				"cache_enabled": true,
				"error":         err.Error(),
			})
			return
		}
		c.JSON(200, gin.H{
			"cache_enabled": true,
			"status":        status,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("FitTrack API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
