package models

import (
	"time"

	"github.com/BruksfildServices01/booktable/internal/clock"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RestaurantID   uint   `gorm:"not null;index:idx_bookings_slot,priority:1" json:"restaurant_id"`
	RestaurantName string `gorm:"size:100" json:"restaurant_name"`

	CustomerID string `gorm:"size:64;not null;index:idx_bookings_customer,priority:1" json:"customer_id"`
	Email      string `gorm:"size:100" json:"email"`

	BookingDate clock.Date      `gorm:"type:varchar(10);not null;index:idx_bookings_slot,priority:2;index:idx_bookings_customer,priority:2" json:"booking_date"`
	BookingTime clock.TimeOfDay `gorm:"type:varchar(5);not null;index:idx_bookings_slot,priority:3" json:"booking_time"`
	PartySize   int             `gorm:"not null" json:"party_size"`

	Status      BookingStatus `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	CancelledAt *time.Time    `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
