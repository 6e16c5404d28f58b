package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/domain/availability"
	"github.com/BruksfildServices01/booktable/internal/models"
)

// RestaurantConfigGormRepository stores operating hours, slot grids and
// table inventory.
type RestaurantConfigGormRepository struct {
	db *gorm.DB
}

func NewRestaurantConfigGormRepository(db *gorm.DB) *RestaurantConfigGormRepository {
	return &RestaurantConfigGormRepository{db: db}
}

// --------------------------------------------------
// Hours
// --------------------------------------------------

func (r *RestaurantConfigGormRepository) GetHours(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
) (*models.OperatingHours, error) {

	var h models.OperatingHours
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND day_of_week = ?", restaurantID, dayOfWeek).
		First(&h).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *RestaurantConfigGormRepository) ListHours(
	ctx context.Context,
	restaurantID uint,
) ([]models.OperatingHours, error) {

	var hours []models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Slot grid
// --------------------------------------------------

func (r *RestaurantConfigGormRepository) GetSlots(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
) ([]clock.TimeOfDay, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Select("slot_time").
		Where("restaurant_id = ? AND day_of_week = ?", restaurantID, dayOfWeek).
		Order("slot_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	out := make([]clock.TimeOfDay, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.SlotTime)
	}
	return out, nil
}

func (r *RestaurantConfigGormRepository) ListSlots(
	ctx context.Context,
	restaurantID uint,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("day_of_week ASC, slot_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Tables
// --------------------------------------------------

func (r *RestaurantConfigGormRepository) TotalCapacity(
	ctx context.Context,
	restaurantID uint,
) (int, error) {
	return totalCapacity(r.db.WithContext(ctx), restaurantID)
}

func (r *RestaurantConfigGormRepository) ListTables(
	ctx context.Context,
	restaurantID uint,
) ([]models.TableConfiguration, error) {

	var tables []models.TableConfiguration
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("seat_count ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func totalCapacity(db *gorm.DB, restaurantID uint) (int, error) {
	var total int64
	if err := db.
		Model(&models.TableConfiguration{}).
		Select("COALESCE(SUM(seat_count * quantity), 0)").
		Where("restaurant_id = ?", restaurantID).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

// --------------------------------------------------
// Replace-all
// --------------------------------------------------

// ReplaceConfiguration deletes and re-inserts hours, slots and tables in
// one transaction so readers never observe a half-written configuration.
func (r *RestaurantConfigGormRepository) ReplaceConfiguration(
	ctx context.Context,
	restaurantID uint,
	hours []models.OperatingHours,
	slots []models.TimeSlot,
	tables []models.TableConfiguration,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurantID).
			Delete(&models.OperatingHours{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", restaurantID).
			Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", restaurantID).
			Delete(&models.TableConfiguration{}).Error; err != nil {
			return err
		}

		for i := range hours {
			hours[i].ID = 0
			hours[i].RestaurantID = restaurantID
		}
		for i := range slots {
			slots[i].ID = 0
			slots[i].RestaurantID = restaurantID
		}
		for i := range tables {
			tables[i].ID = 0
			tables[i].RestaurantID = restaurantID
		}

		if len(hours) > 0 {
			if err := tx.Create(&hours).Error; err != nil {
				return err
			}
		}
		if len(slots) > 0 {
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}
		if len(tables) > 0 {
			if err := tx.Create(&tables).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Compile-time check
var (
	_ availability.HoursStore          = (*RestaurantConfigGormRepository)(nil)
	_ availability.SlotStore           = (*RestaurantConfigGormRepository)(nil)
	_ availability.TableStore          = (*RestaurantConfigGormRepository)(nil)
	_ availability.ConfigurationWriter = (*RestaurantConfigGormRepository)(nil)
)
