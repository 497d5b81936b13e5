package routes

import (
	"restaurant-directory-api/handlers"
	"restaurant-directory-api/middleware"
	"restaurant-directory-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, auth *handlers.AuthHandler, restaurants *handlers.RestaurantHandler, meals *handlers.MealHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", auth.Register)
		public.POST("/auth/login", auth.Login)

		// Restaurants & meals (no auth needed)
		public.GET("/restaurants", restaurants.Search)
		public.GET("/restaurants/:id", restaurants.Get)
		public.GET("/meals", meals.List)
		public.GET("/meals/restaurant/:restaurantId", meals.ListByRestaurant)
		public.GET("/meals/:id", meals.Get)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/profile", auth.GetProfile)

		// Restaurant management
		authed.POST("/restaurants", middleware.RoleRequired(models.RoleAdmin, models.RoleUser), restaurants.Create)
		authed.PUT("/restaurants/:id", restaurants.Update)
		authed.DELETE("/restaurants/:id", restaurants.Delete)

		// Meal management
		authed.POST("/meals", meals.Create)
		authed.PUT("/meals/:id", meals.Update)
		authed.DELETE("/meals/:id", meals.Delete)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", auth.ListUsers)
	}
}
