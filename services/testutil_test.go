package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"restaurant-directory-api/config"
	"restaurant-directory-api/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubGeocoder records calls and returns a canned location or error.
type stubGeocoder struct {
	loc   *models.Location
	err   error
	calls int
}

func (s *stubGeocoder) Resolve(ctx context.Context, address string) (*models.Location, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.loc, nil
}

func testLocation() *models.Location {
	return &models.Location{
		Type:             "Point",
		Coordinates:      []float64{-73.9855, 40.7580},
		FormattedAddress: "Times Square, Manhattan, New York, NY 10036, United States",
		City:             "New York",
		CountryCode:      "us",
		Zipcode:          "10036",
		Country:          "United States",
	}
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "irrelevant",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, owner *models.User) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		OwnerID:  owner.ID,
		Name:     name,
		Address:  "1 Main St",
		Category: models.CategoryCafe,
		Menu:     []uint{},
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}
