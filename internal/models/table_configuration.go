package models

import "time"

type TableConfiguration struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	SeatCount    int  `gorm:"not null" json:"seat_count"`
	Quantity     int  `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}
