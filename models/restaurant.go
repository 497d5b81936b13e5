package models

import "time"

// Category defines the allowed restaurant categories
type Category string

const (
	CategoryFastFood   Category = "Fast Food"
	CategoryCafe       Category = "Cafe"
	CategoryFineDining Category = "Fine Dining"
)

// Location is the structured address derived from geocoding the free-text
// address at creation time. It is never recomputed on later updates.
type Location struct {
	Type             string    `json:"type"`
	Coordinates      []float64 `json:"coordinates"` // [longitude, latitude]
	FormattedAddress string    `json:"formattedAddress"`
	City             string    `json:"city"`
	CountryCode      string    `json:"countryCode"`
	Zipcode          string    `json:"zipcode"`
	Country          string    `json:"country"`
}

type Restaurant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"not null"`
	Owner       *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Category    Category  `json:"category"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	Location    *Location `json:"location,omitempty" gorm:"serializer:json"`
	Menu        []uint    `json:"menu" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
