package models

import (
	"time"

	"github.com/BruksfildServices01/booktable/internal/clock"
)

type TimeSlot struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RestaurantID uint            `gorm:"not null;index:idx_slots_restaurant_day" json:"restaurant_id"`
	DayOfWeek    int             `gorm:"not null;index:idx_slots_restaurant_day" json:"day_of_week"`
	SlotTime     clock.TimeOfDay `gorm:"type:varchar(5);not null" json:"slot_time"`

	CreatedAt time.Time `json:"created_at"`
}
