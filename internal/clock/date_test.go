package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfWeekStartsOnSunday(t *testing.T) {
	// 2025-06-01 is a Sunday.
	assert.Equal(t, 0, MustParseDate("2025-06-01").DayOfWeek())
	assert.Equal(t, 1, MustParseDate("2025-06-02").DayOfWeek())
	assert.Equal(t, 6, MustParseDate("2025-06-07").DayOfWeek())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.February, Day: 28}, d)
	assert.Equal(t, "2025-02-28", d.String())

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)

	_, err = ParseDate("28/02/2025")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2025-03-04"))
	assert.Equal(t, MustParseDate("2025-03-04"), d)

	require.NoError(t, d.Scan("2025-03-05T00:00:00Z"))
	assert.Equal(t, MustParseDate("2025-03-05"), d)

	require.NoError(t, d.Scan(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, MustParseDate("2025-03-06"), d)
}

func TestTimeOfDayOnDate(t *testing.T) {
	loc := time.UTC
	got := MustParse("18:30").On(MustParseDate("2025-06-02"), loc)
	assert.Equal(t, time.Date(2025, 6, 2, 18, 30, 0, 0, loc), got)
}

func TestDateRange(t *testing.T) {
	from := MustParseDate("2024-02-01")
	to := MustParseDate("2024-02-29")

	assert.True(t, from.Before(to))
	assert.False(t, to.Before(from))
	assert.False(t, from.Before(from))
	assert.Equal(t, 29, from.DaysThrough(to))
	assert.Equal(t, 1, from.DaysThrough(from))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), to.Time())
}
