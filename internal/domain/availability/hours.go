package availability

import (
	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/models"
)

// IsOpenAt applies the half-open interval [open, close). When close is
// earlier than open the window crosses midnight; only the current day's
// row is consulted, the previous day's overnight tail is not borrowed.
func IsOpenAt(hours *models.OperatingHours, at clock.TimeOfDay) bool {
	if hours == nil || hours.OpenTime == nil || hours.CloseTime == nil {
		return false
	}

	open := *hours.OpenTime
	close := *hours.CloseTime

	if open <= close {
		return open <= at && at < close
	}

	return at >= open || at < close
}

// IsOvernight reports a window that wraps past midnight.
func IsOvernight(hours *models.OperatingHours) bool {
	if hours == nil || hours.OpenTime == nil || hours.CloseTime == nil {
		return false
	}
	return *hours.CloseTime < *hours.OpenTime
}
