package availability

import (
	"context"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

// HoursStore returns nil, nil from GetHours when no row exists for the day.
type HoursStore interface {
	GetHours(
		ctx context.Context,
		restaurantID uint,
		dayOfWeek int,
	) (*models.OperatingHours, error)

	ListHours(
		ctx context.Context,
		restaurantID uint,
	) ([]models.OperatingHours, error)
}

// SlotStore returns a day's grid ordered by slot time.
type SlotStore interface {
	GetSlots(
		ctx context.Context,
		restaurantID uint,
		dayOfWeek int,
	) ([]clock.TimeOfDay, error)

	ListSlots(
		ctx context.Context,
		restaurantID uint,
	) ([]models.TimeSlot, error)
}

type TableStore interface {
	TotalCapacity(
		ctx context.Context,
		restaurantID uint,
	) (int, error)

	ListTables(
		ctx context.Context,
		restaurantID uint,
	) ([]models.TableConfiguration, error)
}

// BookingLedger aggregates confirmed party sizes per slot in one query.
// Every requested slot is present in the result, defaulting to 0.
type BookingLedger interface {
	BookedCapacity(
		ctx context.Context,
		restaurantID uint,
		date clock.Date,
		slots []clock.TimeOfDay,
	) (map[clock.TimeOfDay]int, error)

	CountByRestaurants(
		ctx context.Context,
		restaurantIDs []uint,
		date clock.Date,
	) (map[uint]int, error)
}

// ConfigurationWriter replaces hours, slots and tables of a restaurant
// atomically.
type ConfigurationWriter interface {
	ReplaceConfiguration(
		ctx context.Context,
		restaurantID uint,
		hours []models.OperatingHours,
		slots []models.TimeSlot,
		tables []models.TableConfiguration,
	) error
}

// Invalidator drops cached configuration after a replace.
type Invalidator interface {
	Invalidate(ctx context.Context, restaurantID uint) error
}
