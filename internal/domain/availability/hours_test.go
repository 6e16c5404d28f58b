package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

func hours(open, close string) *models.OperatingHours {
	o := clock.MustParse(open)
	c := clock.MustParse(close)
	return &models.OperatingHours{OpenTime: &o, CloseTime: &c}
}

func TestIsOpenAt_SameDay(t *testing.T) {
	h := hours("11:00", "22:00")

	assert.True(t, IsOpenAt(h, clock.MustParse("11:00")))
	assert.True(t, IsOpenAt(h, clock.MustParse("21:59")))
	assert.False(t, IsOpenAt(h, clock.MustParse("22:00")))
	assert.False(t, IsOpenAt(h, clock.MustParse("10:59")))
}

func TestIsOpenAt_Overnight(t *testing.T) {
	h := hours("18:00", "02:00")

	assert.True(t, IsOvernight(h))
	assert.True(t, IsOpenAt(h, clock.MustParse("18:00")))
	assert.True(t, IsOpenAt(h, clock.MustParse("23:59")))
	assert.True(t, IsOpenAt(h, clock.MustParse("01:30")))
	assert.False(t, IsOpenAt(h, clock.MustParse("02:00")))
	assert.False(t, IsOpenAt(h, clock.MustParse("05:00")))
	assert.False(t, IsOpenAt(h, clock.MustParse("17:59")))
}

func TestIsOpenAt_CloseAtMidnight(t *testing.T) {
	h := hours("18:00", "00:00")

	assert.True(t, IsOpenAt(h, clock.MustParse("23:30")))
	assert.False(t, IsOpenAt(h, clock.Midnight))
}

func TestIsOpenAt_Closed(t *testing.T) {
	assert.False(t, IsOpenAt(nil, clock.MustParse("12:00")))

	o := clock.MustParse("09:00")
	assert.False(t, IsOpenAt(&models.OperatingHours{OpenTime: &o}, clock.MustParse("12:00")))

	assert.False(t, IsOpenAt(hours("12:00", "12:00"), clock.MustParse("12:00")))
}
