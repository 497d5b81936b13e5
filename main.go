package main

import (
	"net/http"
	"os"

	"restaurant-directory-api/config"
	"restaurant-directory-api/geocoder"
	"restaurant-directory-api/handlers"
	"restaurant-directory-api/middleware"
	"restaurant-directory-api/routes"
	"restaurant-directory-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	db, err := config.InitDB(config.GetEnv("DB_PATH", "restaurant_directory.db"))
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	log.Info("Database connected and migrated")

	// Wire services
	geo := geocoder.New(config.GetEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"))
	authService := services.NewAuthService(db, middleware.GenerateToken)
	restaurantService := services.NewRestaurantService(db, geo, log)
	mealService := services.NewMealService(db, log)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Directory API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r,
		handlers.NewAuthHandler(authService),
		handlers.NewRestaurantHandler(restaurantService),
		handlers.NewMealHandler(mealService),
	)

	// Start server
	port := config.GetEnv("PORT", "8080")
	log.WithField("port", port).Info("Server starting")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
