package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/domain/availability"
	"github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var confirmed = string(models.BookingConfirmed)

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) CreateBookingGuarded(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialises concurrent bookings of the same restaurant.
		var rest models.Restaurant
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&rest, b.RestaurantID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound("restaurant_not_found")
		}
		if err != nil {
			return err
		}

		total, err := totalCapacity(tx, b.RestaurantID)
		if err != nil {
			return err
		}

		var booked int64
		if err := tx.
			Model(&models.Booking{}).
			Select("COALESCE(SUM(party_size), 0)").
			Where(
				"restaurant_id = ? AND booking_date = ? AND booking_time = ? AND status = ?",
				b.RestaurantID,
				b.BookingDate.String(),
				b.BookingTime.String(),
				confirmed,
			).
			Scan(&booked).Error; err != nil {
			return err
		}

		if total-int(booked) < b.PartySize {
			return httperr.ErrConflict("over_capacity")
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("booking_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByCustomer(
	ctx context.Context,
	customerID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("booking_date DESC, booking_time DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) FindConflict(
	ctx context.Context,
	customerID string,
	date clock.Date,
	from clock.TimeOfDay,
	to clock.TimeOfDay,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"customer_id = ? AND booking_date = ? AND booking_time BETWEEN ? AND ? AND status = ?",
			customerID,
			date.String(),
			from.String(),
			to.String(),
			confirmed,
		).
		Order("booking_time ASC").
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Cancel
// --------------------------------------------------

// MarkCancelled is a compare-and-set on status: only one of several
// concurrent callers sees RowsAffected == 1.
func (r *BookingGormRepository) MarkCancelled(
	ctx context.Context,
	b *models.Booking,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, confirmed).
		Updates(map[string]any{
			"status":       string(models.BookingCancelled),
			"cancelled_at": b.CancelledAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Ledger aggregates
// --------------------------------------------------

type slotSum struct {
	BookingTime clock.TimeOfDay
	Booked      int64
}

func (r *BookingGormRepository) BookedCapacity(
	ctx context.Context,
	restaurantID uint,
	date clock.Date,
	slots []clock.TimeOfDay,
) (map[clock.TimeOfDay]int, error) {

	out := make(map[clock.TimeOfDay]int, len(slots))
	for _, s := range slots {
		out[s] = 0
	}
	if len(slots) == 0 {
		return out, nil
	}

	var rows []slotSum
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("booking_time, SUM(party_size) AS booked").
		Where(
			"restaurant_id = ? AND booking_date = ? AND status = ? AND booking_time IN ?",
			restaurantID,
			date.String(),
			confirmed,
			clock.Strings(slots),
		).
		Group("booking_time").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.BookingTime] = int(row.Booked)
	}
	return out, nil
}

type restaurantCount struct {
	RestaurantID uint
	Total        int64
}

func (r *BookingGormRepository) CountByRestaurants(
	ctx context.Context,
	restaurantIDs []uint,
	date clock.Date,
) (map[uint]int, error) {

	out := make(map[uint]int, len(restaurantIDs))
	if len(restaurantIDs) == 0 {
		return out, nil
	}

	var rows []restaurantCount
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("restaurant_id, COUNT(*) AS total").
		Where(
			"restaurant_id IN ? AND booking_date = ? AND status = ?",
			restaurantIDs,
			date.String(),
			confirmed,
		).
		Group("restaurant_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.RestaurantID] = int(row.Total)
	}
	return out, nil
}

// --------------------------------------------------
// Analytics
// --------------------------------------------------

type statusCount struct {
	Status models.BookingStatus
	Total  int64
}

func (r *BookingGormRepository) CountByStatus(
	ctx context.Context,
	from clock.Date,
	to clock.Date,
) (map[models.BookingStatus]int, error) {

	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS total").
		Where("booking_date BETWEEN ? AND ?", from.String(), to.String()).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[models.BookingStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = int(row.Total)
	}
	return out, nil
}

type popularRow struct {
	RestaurantID uint
	Name         string
	Total        int64
}

func (r *BookingGormRepository) PopularRestaurants(
	ctx context.Context,
	from clock.Date,
	to clock.Date,
	limit int,
) ([]booking.RestaurantBookings, error) {

	var rows []popularRow
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("bookings.restaurant_id, restaurants.name, COUNT(bookings.id) AS total").
		Joins("JOIN restaurants ON restaurants.id = bookings.restaurant_id AND restaurants.deleted_at IS NULL").
		Where(
			"bookings.booking_date BETWEEN ? AND ? AND bookings.status = ?",
			from.String(),
			to.String(),
			confirmed,
		).
		Group("bookings.restaurant_id, restaurants.name").
		Order("total DESC, bookings.restaurant_id").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]booking.RestaurantBookings, 0, len(rows))
	for _, row := range rows {
		out = append(out, booking.RestaurantBookings{
			RestaurantID: row.RestaurantID,
			Name:         row.Name,
			Bookings:     int(row.Total),
		})
	}
	return out, nil
}

// Compile-time check
var (
	_ booking.Repository         = (*BookingGormRepository)(nil)
	_ booking.Analytics          = (*BookingGormRepository)(nil)
	_ availability.BookingLedger = (*BookingGormRepository)(nil)
)
