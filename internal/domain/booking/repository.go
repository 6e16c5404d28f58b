package booking

import (
	"context"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

type Repository interface {
	// -------- Create --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// CreateBookingGuarded re-checks capacity for the slot and inserts in the
	// same transaction, holding a lock on the restaurant row. Returns a
	// Conflict "over_capacity" when the party no longer fits.
	CreateBookingGuarded(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Read --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListByCustomer(
		ctx context.Context,
		customerID string,
	) ([]models.Booking, error)

	FindConflict(
		ctx context.Context,
		customerID string,
		date clock.Date,
		from clock.TimeOfDay,
		to clock.TimeOfDay,
	) (*models.Booking, error)

	// -------- State change --------

	// MarkCancelled flips a confirmed booking to cancelled. It reports false
	// when the row was not confirmed at the time of the update.
	MarkCancelled(
		ctx context.Context,
		b *models.Booking,
	) (bool, error)
}

// Notifier is the notification collaborator. Both calls are best effort.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b *models.Booking) bool
	SendBookingCancellation(ctx context.Context, b *models.Booking) bool
}

// RestaurantBookings is one row of the popularity ranking.
type RestaurantBookings struct {
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Bookings     int    `json:"bookings"`
}

// Analytics groups the ledger over an inclusive date range.
type Analytics interface {
	CountByStatus(
		ctx context.Context,
		from clock.Date,
		to clock.Date,
	) (map[models.BookingStatus]int, error)

	// PopularRestaurants ranks live restaurants by confirmed bookings.
	PopularRestaurants(
		ctx context.Context,
		from clock.Date,
		to clock.Date,
		limit int,
	) ([]RestaurantBookings, error)
}
