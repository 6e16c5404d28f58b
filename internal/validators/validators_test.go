package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

func h(day int, open, close string) models.OperatingHours {
	o := clock.MustParse(open)
	c := clock.MustParse(close)
	return models.OperatingHours{DayOfWeek: day, OpenTime: &o, CloseTime: &c}
}

func s(day int, at string) models.TimeSlot {
	return models.TimeSlot{DayOfWeek: day, SlotTime: clock.MustParse(at)}
}

func code(err error) string {
	return httperr.CodeOf(err)
}

func TestValidateConfiguration_OK(t *testing.T) {
	err := ValidateConfiguration(
		[]models.OperatingHours{h(1, "11:00", "22:00"), h(2, "18:00", "02:00")},
		[]models.TimeSlot{s(1, "11:00"), s(1, "21:30"), s(2, "23:30"), s(2, "01:00"), s(2, "01:59")},
		[]models.TableConfiguration{{SeatCount: 2, Quantity: 4}},
	)
	assert.NoError(t, err)
}

func TestValidateConfiguration_Errors(t *testing.T) {
	cases := []struct {
		name   string
		hours  []models.OperatingHours
		slots  []models.TimeSlot
		tables []models.TableConfiguration
		want   string
	}{
		{
			name:  "day out of range",
			hours: []models.OperatingHours{h(7, "11:00", "22:00")},
			want:  "invalid_day_of_week",
		},
		{
			name:  "duplicate day",
			hours: []models.OperatingHours{h(1, "11:00", "22:00"), h(1, "12:00", "23:00")},
			want:  "duplicate_hours_day",
		},
		{
			name:  "empty window",
			hours: []models.OperatingHours{h(1, "11:00", "11:00")},
			want:  "empty_hours_window",
		},
		{
			name:  "slot before opening",
			hours: []models.OperatingHours{h(0, "11:00", "22:00")},
			slots: []models.TimeSlot{s(0, "10:00")},
			want:  "slot_outside_hours",
		},
		{
			name:  "overnight slot after close",
			hours: []models.OperatingHours{h(2, "18:00", "02:00")},
			slots: []models.TimeSlot{s(2, "03:00")},
			want:  "slot_outside_hours",
		},
		{
			name:  "slot at closing time",
			hours: []models.OperatingHours{h(1, "11:00", "22:00")},
			slots: []models.TimeSlot{s(1, "22:00")},
			want:  "slot_outside_hours",
		},
		{
			name:  "overnight slot at closing time",
			hours: []models.OperatingHours{h(2, "18:00", "02:00")},
			slots: []models.TimeSlot{s(2, "02:00")},
			want:  "slot_outside_hours",
		},
		{
			name:  "slot on closed day",
			hours: []models.OperatingHours{{DayOfWeek: 3}},
			slots: []models.TimeSlot{s(3, "12:00")},
			want:  "slot_on_closed_day",
		},
		{
			name:  "duplicate slot",
			hours: []models.OperatingHours{h(1, "11:00", "22:00")},
			slots: []models.TimeSlot{s(1, "12:00"), s(1, "12:00")},
			want:  "duplicate_slot",
		},
		{
			name:   "zero seats",
			tables: []models.TableConfiguration{{SeatCount: 0, Quantity: 2}},
			want:   "invalid_table_configuration",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateConfiguration(tc.hours, tc.slots, tc.tables)
			assert.Equal(t, httperr.KindInvalidInput, httperr.KindOf(err))
			assert.Equal(t, tc.want, code(err))
		})
	}
}

func TestValidateRestaurant(t *testing.T) {
	ok := &models.Restaurant{Name: "Trattoria", Latitude: 40.7, Longitude: -74, CostRating: 2, Timezone: "America/New_York"}
	assert.NoError(t, ValidateRestaurant(ok))

	assert.Equal(t, "name_required", code(ValidateRestaurant(&models.Restaurant{Name: " "})))
	assert.Equal(t, "invalid_coordinates", code(ValidateRestaurant(&models.Restaurant{Name: "x", Latitude: 91})))
	assert.Equal(t, "invalid_timezone", code(ValidateRestaurant(&models.Restaurant{Name: "x", Timezone: "Mars/Base"})))
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("guest@example.com"))
	assert.False(t, IsEmailValid(""))
	assert.False(t, IsEmailValid("guest"))
	assert.False(t, IsEmailValid("guest@localhost"))
	assert.False(t, IsEmailValid("Guest <guest@example.com>"))
}
