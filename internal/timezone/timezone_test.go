package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "America/New_York", Location("America/New_York").String())
	assert.Equal(t, Default(), Location("Not/AZone").String())
	assert.Equal(t, Default(), Location("").String())
}

func TestSetDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(DefaultTimezone) })

	SetDefault("Europe/Lisbon")
	assert.Equal(t, "Europe/Lisbon", Location("").String())

	SetDefault("bogus")
	assert.Equal(t, "Europe/Lisbon", Default())
}

func TestIn(t *testing.T) {
	utc := time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC)
	local := In(utc, "Asia/Tokyo")

	assert.Equal(t, 3, local.Day())
	assert.Equal(t, 8, local.Hour())
}
