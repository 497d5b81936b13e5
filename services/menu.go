package services

import (
	"errors"

	"restaurant-directory-api/models"

	"gorm.io/gorm"
)

// MenuManager maintains the denormalized Restaurant.Menu back-reference.
// Methods take the *gorm.DB to run against so callers can execute them inside
// their own transaction alongside the meal write.
type MenuManager struct{}

// Attach appends mealID to the restaurant's menu. Appending is idempotent:
// an id already listed is not added twice.
func (MenuManager) Attach(tx *gorm.DB, restaurantID, mealID uint) error {
	var restaurant models.Restaurant
	if err := tx.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	for _, id := range restaurant.Menu {
		if id == mealID {
			return nil
		}
	}

	restaurant.Menu = append(restaurant.Menu, mealID)
	return tx.Save(&restaurant).Error
}

// DetachEverywhere removes mealID from the menu of every restaurant that
// lists it. Removal takes the first occurrence only. Zero matches is a no-op.
func (MenuManager) DetachEverywhere(tx *gorm.DB, mealID uint) error {
	var restaurants []models.Restaurant
	err := tx.
		Where("EXISTS (SELECT 1 FROM json_each(restaurants.menu) WHERE json_each.value = ?)", mealID).
		Find(&restaurants).Error
	if err != nil {
		return err
	}

	for i := range restaurants {
		restaurant := &restaurants[i]
		for idx, id := range restaurant.Menu {
			if id == mealID {
				restaurant.Menu = append(restaurant.Menu[:idx], restaurant.Menu[idx+1:]...)
				break
			}
		}
		if err := tx.Save(restaurant).Error; err != nil {
			return err
		}
	}
	return nil
}
