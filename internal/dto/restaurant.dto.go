package dto

import (
	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

type CreateRestaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	CuisineType  string `json:"cuisine_type"`
	CostRating   int    `json:"cost_rating"`
	Description  string `json:"description"`
	ContactPhone string `json:"contact_phone"`

	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Country     string `json:"country"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

type HoursDTO struct {
	DayOfWeek int              `json:"day_of_week"`
	OpenTime  *clock.TimeOfDay `json:"open_time"`
	CloseTime *clock.TimeOfDay `json:"close_time"`
}

type DaySlotsDTO struct {
	DayOfWeek int               `json:"day_of_week"`
	Times     []clock.TimeOfDay `json:"times"`
}

type TableDTO struct {
	SeatCount int `json:"seat_count"`
	Quantity  int `json:"quantity"`
}

// ConfigurationRequest replaces hours, slot grid and tables in one go.
type ConfigurationRequest struct {
	Hours  []HoursDTO    `json:"operating_hours"`
	Slots  []DaySlotsDTO `json:"time_slots"`
	Tables []TableDTO    `json:"tables"`
}

func (r ConfigurationRequest) Models() ([]models.OperatingHours, []models.TimeSlot, []models.TableConfiguration) {
	hours := make([]models.OperatingHours, 0, len(r.Hours))
	for _, h := range r.Hours {
		hours = append(hours, models.OperatingHours{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		})
	}

	var slots []models.TimeSlot
	for _, d := range r.Slots {
		for _, t := range d.Times {
			slots = append(slots, models.TimeSlot{DayOfWeek: d.DayOfWeek, SlotTime: t})
		}
	}

	tables := make([]models.TableConfiguration, 0, len(r.Tables))
	for _, t := range r.Tables {
		tables = append(tables, models.TableConfiguration{SeatCount: t.SeatCount, Quantity: t.Quantity})
	}

	return hours, slots, tables
}

type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type PresignPhotoRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

type AttachPhotoRequest struct {
	Key         string `json:"key" binding:"required"`
	Description string `json:"description"`
	Main        bool   `json:"main"`
}

type AddReviewRequest struct {
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"review_text"`
	UserName   string `json:"user_name"`
}
