package models

import "time"

type Review struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	CustomerID   string `gorm:"size:64;not null" json:"-"`
	UserName     string `gorm:"size:100" json:"user_name"`

	Rating     int    `gorm:"not null" json:"rating"`
	ReviewText string `gorm:"size:1000" json:"review_text"`

	CreatedAt time.Time `json:"created_at"`
}
