package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"restaurant-directory-api/geocoder"
	"restaurant-directory-api/models"
	"restaurant-directory-api/policy"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// resPerPage is the fixed search page size.
const resPerPage = 2

// escapeLike makes a search keyword safe for LIKE: %, _ and the escape
// character itself match literally instead of acting as wildcards.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// parseID validates an id against the store's id scheme (positive integer).
// Malformed ids are rejected before any store access.
func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil || n == 0 {
		return 0, ErrInvalidID
	}
	return uint(n), nil
}

type RestaurantService struct {
	DB       *gorm.DB
	Geocoder geocoder.Geocoder
	Log      *logrus.Logger
}

func NewRestaurantService(db *gorm.DB, geo geocoder.Geocoder, log *logrus.Logger) *RestaurantService {
	return &RestaurantService{DB: db, Geocoder: geo, Log: log}
}

type CreateRestaurantInput struct {
	Name        string
	Description string
	Email       string
	Phone       string
	Address     string
	Category    models.Category
	Images      []string
}

// UpdateRestaurantInput is a partial patch; nil fields are left untouched.
// Owner is deliberately absent: it is set once at creation and never patched.
type UpdateRestaurantInput struct {
	Name        *string
	Description *string
	Email       *string
	Phone       *string
	Address     *string
	Category    *models.Category
	Images      *[]string
}

// Search returns one page of restaurants, optionally filtered by a
// case-insensitive substring match on name. Out-of-range pages yield an
// empty slice, not an error.
func (s *RestaurantService) Search(keyword string, page int) ([]models.Restaurant, error) {
	if page < 1 {
		page = 1
	}

	query := s.DB.Limit(resPerPage).Offset(resPerPage * (page - 1)).Order("id")
	if keyword != "" {
		query = query.Where(`name LIKE ? ESCAPE '\'`, "%"+escapeLike(keyword)+"%")
	}

	restaurants := []models.Restaurant{}
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Create persists a new restaurant owned by the caller. The address is
// geocoded synchronously; a geocoding failure degrades the record (no
// location) instead of aborting creation.
func (s *RestaurantService) Create(ctx context.Context, input CreateRestaurantInput, caller *models.User) (*models.Restaurant, error) {
	location, err := s.Geocoder.Resolve(ctx, input.Address)
	if err != nil {
		s.Log.WithError(err).WithField("address", input.Address).
			Warn("geocoding failed, creating restaurant without location")
		location = nil
	}

	restaurant := models.Restaurant{
		OwnerID:     caller.ID,
		Name:        input.Name,
		Description: input.Description,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Category:    input.Category,
		Images:      input.Images,
		Location:    location,
		Menu:        []uint{},
	}
	if err := s.DB.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindByID returns a restaurant, including its current menu listing.
func (s *RestaurantService) FindByID(id string) (*models.Restaurant, error) {
	rid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, rid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// Update applies a partial patch after verifying the caller owns the
// restaurant. A Forbidden outcome performs no write. The address is not
// re-geocoded on update.
func (s *RestaurantService) Update(id string, patch UpdateRestaurantInput, caller *models.User) (*models.Restaurant, error) {
	restaurant, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.IsOwner(restaurant.OwnerID, caller.ID) {
		return nil, ErrForbidden
	}

	if patch.Name != nil {
		restaurant.Name = *patch.Name
	}
	if patch.Description != nil {
		restaurant.Description = *patch.Description
	}
	if patch.Email != nil {
		restaurant.Email = *patch.Email
	}
	if patch.Phone != nil {
		restaurant.Phone = *patch.Phone
	}
	if patch.Address != nil {
		restaurant.Address = *patch.Address
	}
	if patch.Category != nil {
		restaurant.Category = *patch.Category
	}
	if patch.Images != nil {
		restaurant.Images = *patch.Images
	}

	if err := s.DB.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Delete removes a restaurant after confirming it exists. Ownership for
// delete is enforced by the caller-facing layer; once invoked, removal is
// unconditional. Meals of the restaurant are left in place.
func (s *RestaurantService) Delete(id string) error {
	restaurant, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Restaurant{}, restaurant.ID).Error
}
