package dto

import (
	"time"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

type CreateBookingRequest struct {
	RestaurantID uint            `json:"restaurant_id" binding:"required"`
	Email        string          `json:"email"`
	Date         clock.Date      `json:"date"`
	Time         clock.TimeOfDay `json:"time"`
	PartySize    int             `json:"party_size"`
}

type BookingDTO struct {
	ID             uint            `json:"id"`
	RestaurantID   uint            `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
	Date           clock.Date      `json:"date"`
	Time           clock.TimeOfDay `json:"time"`
	PartySize      int             `json:"party_size"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	EmailSent      *bool           `json:"email_sent,omitempty"`
}

type ConflictDTO struct {
	HasConflict bool        `json:"has_conflict"`
	Booking     *BookingDTO `json:"conflicting_booking,omitempty"`
}

func FromBooking(b *models.Booking) *BookingDTO {
	if b == nil {
		return nil
	}
	return &BookingDTO{
		ID:             b.ID,
		RestaurantID:   b.RestaurantID,
		RestaurantName: b.RestaurantName,
		Date:           b.BookingDate,
		Time:           b.BookingTime,
		PartySize:      b.PartySize,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		CancelledAt:    b.CancelledAt,
	}
}
