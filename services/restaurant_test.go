package services

import (
	"context"
	"errors"
	"testing"

	"restaurant-directory-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurantService(t *testing.T, geo *stubGeocoder) (*RestaurantService, *models.User) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRestaurantService(db, geo, newTestLogger())
	owner := seedUser(t, db, "alice", models.RoleUser)
	return svc, owner
}

func createInput(name string) CreateRestaurantInput {
	return CreateRestaurantInput{
		Name:        name,
		Description: "a place to eat",
		Email:       "contact@" + name + ".example.com",
		Phone:       "+12025550123",
		Address:     "Times Square, New York",
		Category:    models.CategoryCafe,
	}
}

func TestRestaurantCreate(t *testing.T) {
	geo := &stubGeocoder{loc: testLocation()}
	svc, owner := newRestaurantService(t, geo)

	restaurant, err := svc.Create(context.Background(), createInput("Uno"), owner)
	require.NoError(t, err)

	assert.NotZero(t, restaurant.ID)
	assert.Equal(t, owner.ID, restaurant.OwnerID)
	assert.Empty(t, restaurant.Menu)
	require.NotNil(t, restaurant.Location)
	assert.Equal(t, "Point", restaurant.Location.Type)
	assert.Equal(t, "New York", restaurant.Location.City)
	assert.Equal(t, 1, geo.calls)

	// location survives a round trip through the store
	loaded, err := svc.FindByID("1")
	require.NoError(t, err)
	require.NotNil(t, loaded.Location)
	assert.Equal(t, []float64{-73.9855, 40.7580}, loaded.Location.Coordinates)
}

func TestRestaurantCreateDegradedWhenGeocodingFails(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("provider down")}
	svc, owner := newRestaurantService(t, geo)

	restaurant, err := svc.Create(context.Background(), createInput("Uno"), owner)
	require.NoError(t, err)
	assert.Nil(t, restaurant.Location)

	loaded, err := svc.FindByID("1")
	require.NoError(t, err)
	assert.Nil(t, loaded.Location)
}

func TestRestaurantSearchPagination(t *testing.T) {
	svc, owner := newRestaurantService(t, &stubGeocoder{loc: testLocation()})
	for _, name := range []string{"Cafe Uno", "Cafe Dos", "Burger Tres"} {
		_, err := svc.Create(context.Background(), createInput(name), owner)
		require.NoError(t, err)
	}

	page1, err := svc.Search("", 1)
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, "Cafe Uno", page1[0].Name)
	assert.Equal(t, "Cafe Dos", page1[1].Name)

	page2, err := svc.Search("", 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)
	assert.Equal(t, "Burger Tres", page2[0].Name)

	// out-of-range page is an empty sequence, not an error
	page100, err := svc.Search("", 100)
	require.NoError(t, err)
	assert.Empty(t, page100)

	// page defaults to 1
	defaulted, err := svc.Search("", 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 2)
}

func TestRestaurantSearchKeyword(t *testing.T) {
	svc, owner := newRestaurantService(t, &stubGeocoder{loc: testLocation()})
	for _, name := range []string{"Cafe Uno", "Cafe Dos", "Burger Tres"} {
		_, err := svc.Create(context.Background(), createInput(name), owner)
		require.NoError(t, err)
	}

	// substring match on name, case-insensitive
	cafes, err := svc.Search("cafe", 1)
	require.NoError(t, err)
	assert.Len(t, cafes, 2)

	burgers, err := svc.Search("URGE", 1)
	require.NoError(t, err)
	require.Len(t, burgers, 1)
	assert.Equal(t, "Burger Tres", burgers[0].Name)

	none, err := svc.Search("pizza", 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRestaurantSearchKeywordWildcardsAreLiteral(t *testing.T) {
	svc, owner := newRestaurantService(t, &stubGeocoder{loc: testLocation()})
	for _, name := range []string{"Cafe Uno", "100% Vegan", "C_fe Dos"} {
		_, err := svc.Create(context.Background(), createInput(name), owner)
		require.NoError(t, err)
	}

	// % and _ in the keyword match themselves, not anything
	vegan, err := svc.Search("100%", 1)
	require.NoError(t, err)
	require.Len(t, vegan, 1)
	assert.Equal(t, "100% Vegan", vegan[0].Name)

	percent, err := svc.Search("%", 1)
	require.NoError(t, err)
	require.Len(t, percent, 1)
	assert.Equal(t, "100% Vegan", percent[0].Name)

	underscore, err := svc.Search("C_fe", 1)
	require.NoError(t, err)
	require.Len(t, underscore, 1)
	assert.Equal(t, "C_fe Dos", underscore[0].Name)
}

func TestRestaurantFindByID(t *testing.T) {
	svc, owner := newRestaurantService(t, &stubGeocoder{loc: testLocation()})
	_, err := svc.Create(context.Background(), createInput("Uno"), owner)
	require.NoError(t, err)

	_, err = svc.FindByID("not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.FindByID("999")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := svc.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Uno", found.Name)
}

func TestRestaurantUpdate(t *testing.T) {
	geo := &stubGeocoder{loc: testLocation()}
	svc, owner := newRestaurantService(t, geo)
	created, err := svc.Create(context.Background(), createInput("Uno"), owner)
	require.NoError(t, err)

	name := "Uno Renamed"
	address := "somewhere else entirely"
	updated, err := svc.Update("1", UpdateRestaurantInput{Name: &name, Address: &address}, owner)
	require.NoError(t, err)

	assert.Equal(t, "Uno Renamed", updated.Name)
	assert.Equal(t, address, updated.Address)
	// untouched fields keep their values
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, owner.ID, updated.OwnerID)
	// address edits do not re-geocode
	assert.Equal(t, 1, geo.calls)
	assert.Equal(t, created.Location, updated.Location)
}

func TestRestaurantUpdateForbidden(t *testing.T) {
	svc, owner := newRestaurantService(t, &stubGeocoder{loc: testLocation()})
	_, err := svc.Create(context.Background(), createInput("Uno"), owner)
	require.NoError(t, err)

	intruder := seedUser(t, svc.DB, "mallory", models.RoleUser)
	name := "Hijacked"
	_, err = svc.Update("1", UpdateRestaurantInput{Name: &name}, intruder)
	assert.ErrorIs(t, err, ErrForbidden)

	// no write happened
	loaded, err := svc.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Uno", loaded.Name)
}

func TestRestaurantDelete(t *testing.T) {
	svc, owner := newRestaurantService(t, &stubGeocoder{loc: testLocation()})
	_, err := svc.Create(context.Background(), createInput("Uno"), owner)
	require.NoError(t, err)

	require.NoError(t, svc.Delete("1"))

	_, err = svc.FindByID("1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete("1"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete("nope"), ErrInvalidID)
}
