package validators

import (
	"strings"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
	"github.com/BruksfildServices01/booktable/internal/timezone"
)

func validDay(d int) bool {
	return d >= 0 && d <= 6
}

// ValidateConfiguration checks hours, slot grid and table inventory before
// they replace a restaurant's current configuration. A day with no hours
// row is closed and may not carry slots.
func ValidateConfiguration(
	hours []models.OperatingHours,
	slots []models.TimeSlot,
	tables []models.TableConfiguration,
) error {

	byDay := make(map[int]models.OperatingHours, len(hours))
	for _, h := range hours {
		if !validDay(h.DayOfWeek) {
			return httperr.ErrInvalid("invalid_day_of_week")
		}
		if _, dup := byDay[h.DayOfWeek]; dup {
			return httperr.ErrInvalid("duplicate_hours_day")
		}
		if (h.OpenTime == nil) != (h.CloseTime == nil) {
			return httperr.ErrInvalid("incomplete_hours")
		}
		if h.OpenTime != nil {
			if !h.OpenTime.Valid() || !h.CloseTime.Valid() {
				return httperr.ErrInvalid("invalid_time")
			}
			if *h.OpenTime == *h.CloseTime {
				return httperr.ErrInvalid("empty_hours_window")
			}
		}
		byDay[h.DayOfWeek] = h
	}

	seen := make(map[int]map[clock.TimeOfDay]struct{}, 7)
	for _, s := range slots {
		if !validDay(s.DayOfWeek) {
			return httperr.ErrInvalid("invalid_day_of_week")
		}
		if !s.SlotTime.Valid() {
			return httperr.ErrInvalid("invalid_time")
		}

		if seen[s.DayOfWeek] == nil {
			seen[s.DayOfWeek] = make(map[clock.TimeOfDay]struct{})
		}
		if _, dup := seen[s.DayOfWeek][s.SlotTime]; dup {
			return httperr.ErrInvalid("duplicate_slot")
		}
		seen[s.DayOfWeek][s.SlotTime] = struct{}{}

		h, ok := byDay[s.DayOfWeek]
		if !ok || h.OpenTime == nil {
			return httperr.ErrInvalid("slot_on_closed_day")
		}
		if !slotWithinHours(*h.OpenTime, *h.CloseTime, s.SlotTime) {
			return httperr.ErrInvalid("slot_outside_hours")
		}
	}

	for _, t := range tables {
		if t.SeatCount < 1 || t.Quantity < 1 {
			return httperr.ErrInvalid("invalid_table_configuration")
		}
	}

	return nil
}

// slotWithinHours uses the same half-open [open, close) window as the
// availability engine, so every accepted slot can be offered.
func slotWithinHours(open, close, slot clock.TimeOfDay) bool {
	if open < close {
		return open <= slot && slot < close
	}
	return slot >= open || slot < close
}

// ValidateRestaurant checks the descriptive fields of a restaurant record.
func ValidateRestaurant(r *models.Restaurant) error {
	if strings.TrimSpace(r.Name) == "" {
		return httperr.ErrInvalid("name_required")
	}
	if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
		return httperr.ErrInvalid("invalid_coordinates")
	}
	if r.CostRating < 0 || r.CostRating > 4 {
		return httperr.ErrInvalid("invalid_cost_rating")
	}
	if r.Timezone != "" && !timezone.IsValid(r.Timezone) {
		return httperr.ErrInvalid("invalid_timezone")
	}
	return nil
}
