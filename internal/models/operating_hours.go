package models

import (
	"time"

	"github.com/BruksfildServices01/booktable/internal/clock"
)

// OperatingHours with a nil bound means the restaurant is closed that day.
// CloseTime earlier than OpenTime is an overnight window.
type OperatingHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"not null;uniqueIndex:idx_hours_restaurant_day" json:"restaurant_id"`
	DayOfWeek    int  `gorm:"not null;uniqueIndex:idx_hours_restaurant_day" json:"day_of_week"`

	OpenTime  *clock.TimeOfDay `gorm:"type:varchar(5)" json:"open_time"`
	CloseTime *clock.TimeOfDay `gorm:"type:varchar(5)" json:"close_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OperatingHours) TableName() string {
	return "operating_hours"
}
