package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is immutable catalog data shipped with the code (see catalog package)
// and seeded into the database so bookings can reference it by FK.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string  `gorm:"size:255" json:"name"`
	Slug            string  `gorm:"uniqueIndex;size:100" json:"slug"`
	Description     string  `gorm:"type:text" json:"description"`
	LongDescription string  `gorm:"type:text" json:"longDescription"`
	PricePerNight   float64 `gorm:"column:price_per_night" json:"price"`

	// image ids and amenity slugs, stored as JSON arrays
	Images    datatypes.JSON `gorm:"column:images" json:"images"`
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities"`

	Capacity int `json:"capacity"`
	Sqft     int `json:"sqft"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
