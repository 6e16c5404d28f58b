package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ManagerID string `gorm:"size:64;index;not null" json:"manager_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	CuisineType  string `gorm:"size:50" json:"cuisine_type"`
	CostRating   int    `json:"cost_rating"`
	Description  string `gorm:"size:500" json:"description"`
	ContactPhone string `gorm:"size:20" json:"contact_phone"`

	AddressLine string `gorm:"size:255" json:"address_line"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:50" json:"state"`
	ZipCode     string `gorm:"size:20" json:"zip_code"`
	Country     string `gorm:"size:50" json:"country"`

	Latitude  float64 `gorm:"index:idx_restaurants_location" json:"latitude"`
	Longitude float64 `gorm:"index:idx_restaurants_location" json:"longitude"`
	Timezone  string  `gorm:"size:64" json:"timezone"`

	MainPhotoKey string `gorm:"size:255" json:"main_photo_key"`
	Approved     bool   `gorm:"default:false" json:"approved"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
