package models

import "time"

type Photo struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	ObjectKey    string `gorm:"size:255;not null" json:"object_key"`
	Description  string `gorm:"size:255" json:"description"`

	UploadedAt time.Time `json:"uploaded_at"`
}
