package clock

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision, stored as minutes
// after midnight. Valid values are 00:00..23:59.
type TimeOfDay int

const (
	Midnight   TimeOfDay = 0
	LastMinute TimeOfDay = 23*60 + 59
)

func New(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Parse accepts "15:04" and "15:04:05"; seconds are dropped.
func Parse(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("clock: invalid time of day %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 || len(parts[0]) != 2 {
		return 0, fmt.Errorf("clock: invalid hour in %q", s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("clock: invalid minute in %q", s)
	}

	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("clock: invalid second in %q", s)
		}
	}

	return New(h, m), nil
}

func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func FromTime(t time.Time) TimeOfDay {
	return New(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Valid() bool {
	return t >= Midnight && t <= LastMinute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// AbsDiffMinutes is the distance between two times on a plain 24h axis.
// 23:50 and 00:05 are 1425 minutes apart, not 15.
func AbsDiffMinutes(a, b TimeOfDay) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Window returns [t-d, t+d] clamped to the same calendar day.
func Window(t TimeOfDay, d time.Duration) (TimeOfDay, TimeOfDay) {
	span := int(d / time.Minute)

	from := int(t) - span
	if from < int(Midnight) {
		from = int(Midnight)
	}

	to := int(t) + span
	if to > int(LastMinute) {
		to = int(LastMinute)
	}

	return TimeOfDay(from), TimeOfDay(to)
}

// On places the time of day on the calendar day of d in d's location.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, loc)
}

// --------------------------------------------------
// SQL
// --------------------------------------------------

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.parseInto(v)
	case []byte:
		return t.parseInto(string(v))
	case time.Time:
		*t = FromTime(v)
		return nil
	case nil:
		return fmt.Errorf("clock: cannot scan NULL into TimeOfDay")
	default:
		return fmt.Errorf("clock: cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) parseInto(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// --------------------------------------------------
// JSON
// --------------------------------------------------

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parseInto(s)
}

// Strings renders a slice for SQL IN clauses and responses.
func Strings(times []TimeOfDay) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}
