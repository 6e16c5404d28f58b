package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "UTC"

var fallback atomic.Value

func init() {
	fallback.Store(DefaultTimezone)
}

// SetDefault changes the zone used for restaurants without a valid one.
// Invalid names are ignored.
func SetDefault(tz string) {
	if IsValid(tz) {
		fallback.Store(tz)
	}
}

func Default() string {
	return fallback.Load().(string)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(Default())
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(Default()))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// In converts t to the restaurant's zone.
func In(t time.Time, tz string) time.Time {
	return t.In(Location(tz))
}
