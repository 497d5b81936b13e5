package handlers

import (
	"net/http"

	"restaurant-directory-api/middleware"
	"restaurant-directory-api/services"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	Service *services.MealService
}

func NewMealHandler(s *services.MealService) *MealHandler {
	return &MealHandler{Service: s}
}

type CreateMealRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Category     string  `json:"category"`
	RestaurantID uint    `json:"restaurant" binding:"required"`
}

type UpdateMealRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category"`
}

// List returns all meals
func (h *MealHandler) List(c *gin.Context) {
	meals, err := h.Service.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// ListByRestaurant returns all meals belonging to one restaurant
func (h *MealHandler) ListByRestaurant(c *gin.Context) {
	meals, err := h.Service.FindByRestaurant(c.Param("restaurantId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// Get returns a single meal
func (h *MealHandler) Get(c *gin.Context) {
	meal, err := h.Service.FindOne(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// Create adds a meal to the caller's restaurant and its menu
func (h *MealHandler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	meal, err := h.Service.Create(services.CreateMealInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		RestaurantID: req.RestaurantID,
	}, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// Update applies a partial update, owner only
func (h *MealHandler) Update(c *gin.Context) {
	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	meal, err := h.Service.Update(c.Param("id"), services.UpdateMealInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// Delete removes a meal and cleans it out of every restaurant menu
func (h *MealHandler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if err := h.Service.Delete(c.Param("id"), caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
