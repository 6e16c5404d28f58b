package booking

import (
	"time"

	"github.com/BruksfildServices01/booktable/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := Transition(b.Status, StatusCancelled); err != nil {
		return err
	}

	b.Status = StatusCancelled
	b.CancelledAt = &now
	return nil
}

// ConflictWindow is the distance within which one customer may not hold
// two confirmed bookings on the same date.
const ConflictWindow = time.Hour

type ConflictResult struct {
	HasConflict        bool            `json:"has_conflict"`
	ConflictingBooking *models.Booking `json:"conflicting_booking"`
}
