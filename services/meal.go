package services

import (
	"errors"

	"restaurant-directory-api/models"
	"restaurant-directory-api/policy"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MealService struct {
	DB   *gorm.DB
	Menu MenuManager
	Log  *logrus.Logger
}

func NewMealService(db *gorm.DB, log *logrus.Logger) *MealService {
	return &MealService{DB: db, Log: log}
}

type CreateMealInput struct {
	Name         string
	Description  string
	Price        float64
	Category     string
	RestaurantID uint
}

// UpdateMealInput is a partial patch; nil fields are left untouched. The
// restaurant reference and owner are fixed at creation.
type UpdateMealInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
}

func (s *MealService) FindAll() ([]models.Meal, error) {
	meals := []models.Meal{}
	if err := s.DB.Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *MealService) FindByRestaurant(restaurantID string) ([]models.Meal, error) {
	rid, err := parseID(restaurantID)
	if err != nil {
		return nil, err
	}

	meals := []models.Meal{}
	if err := s.DB.Where("restaurant_id = ?", rid).Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *MealService) FindOne(id string) (*models.Meal, error) {
	mid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var meal models.Meal
	if err := s.DB.First(&meal, mid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// Create persists a meal under the caller's restaurant and appends its id to
// that restaurant's menu. The meal write and the menu update share one
// transaction so the back-reference can never be lost between them. Only the
// restaurant's owner may add meals, which also makes meal.OwnerID equal the
// restaurant's owner at creation.
func (s *MealService) Create(input CreateMealInput, caller *models.User) (*models.Meal, error) {
	var meal models.Meal

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, input.RestaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !policy.IsOwner(restaurant.OwnerID, caller.ID) {
			return ErrForbidden
		}

		meal = models.Meal{
			RestaurantID: restaurant.ID,
			OwnerID:      caller.ID,
			Name:         input.Name,
			Description:  input.Description,
			Price:        input.Price,
			Category:     input.Category,
		}
		if err := tx.Create(&meal).Error; err != nil {
			return err
		}

		return s.Menu.Attach(tx, restaurant.ID, meal.ID)
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update applies a partial patch. Ownership is verified before the write, so
// a Forbidden outcome leaves the meal untouched.
func (s *MealService) Update(id string, patch UpdateMealInput, caller *models.User) (*models.Meal, error) {
	meal, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}
	if !policy.IsOwner(meal.OwnerID, caller.ID) {
		return nil, ErrForbidden
	}

	if patch.Name != nil {
		meal.Name = *patch.Name
	}
	if patch.Description != nil {
		meal.Description = *patch.Description
	}
	if patch.Price != nil {
		meal.Price = *patch.Price
	}
	if patch.Category != nil {
		meal.Category = *patch.Category
	}

	if err := s.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete removes a meal and strips its id from the menu of every restaurant
// that lists it, all in one transaction. Ownership is verified before the
// delete.
func (s *MealService) Delete(id string, caller *models.User) error {
	mid, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.First(&meal, mid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !policy.IsOwner(meal.OwnerID, caller.ID) {
			return ErrForbidden
		}

		if err := tx.Delete(&models.Meal{}, mid).Error; err != nil {
			return err
		}

		return s.Menu.DetachEverywhere(tx, mid)
	})
	if err != nil {
		return err
	}

	s.Log.WithField("meal_id", mid).Debug("meal deleted and removed from all menus")
	return nil
}
