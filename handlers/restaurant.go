package handlers

import (
	"net/http"
	"strconv"

	"restaurant-directory-api/middleware"
	"restaurant-directory-api/models"
	"restaurant-directory-api/policy"
	"restaurant-directory-api/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	Service *services.RestaurantService
}

func NewRestaurantHandler(s *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{Service: s}
}

type CreateRestaurantRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Phone       string          `json:"phone" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Category    models.Category `json:"category" binding:"required,oneof='Fast Food' 'Cafe' 'Fine Dining'"`
	Images      []string        `json:"images"`
}

type UpdateRestaurantRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Phone       *string          `json:"phone"`
	Address     *string          `json:"address"`
	Category    *models.Category `json:"category" binding:"omitempty,oneof='Fast Food' 'Cafe' 'Fine Dining'"`
	Images      *[]string        `json:"images"`
	// Owner is not accepted here; any owner field in the body is ignored.
}

// Search returns one page of restaurants filtered by keyword
func (h *RestaurantHandler) Search(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			page = n
		}
	}

	restaurants, err := h.Service.Search(c.Query("keyword"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// Create lets an authenticated admin or user create a restaurant they own
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	restaurant, err := h.Service.Create(c.Request.Context(), services.CreateRestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Category:    req.Category,
		Images:      req.Images,
	}, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

// Get returns a single restaurant including its menu listing
func (h *RestaurantHandler) Get(c *gin.Context) {
	restaurant, err := h.Service.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// Update applies a partial update, owner only
func (h *RestaurantHandler) Update(c *gin.Context) {
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	caller := middleware.CurrentUser(c)
	restaurant, err := h.Service.Update(c.Param("id"), services.UpdateRestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Category:    req.Category,
		Images:      req.Images,
	}, caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// Delete removes a restaurant. Ownership is enforced here; the service
// performs unconditional removal once invoked.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	restaurant, err := h.Service.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	caller := middleware.CurrentUser(c)
	if !policy.IsOwner(restaurant.OwnerID, caller.ID) {
		respondError(c, services.ErrForbidden)
		return
	}

	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
