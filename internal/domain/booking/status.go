package booking

import (
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status = models.BookingStatus

const (
	StatusConfirmed = models.BookingConfirmed
	StatusCancelled = models.BookingCancelled
)

// ===============================
// Validations
// ===============================

// CanCancel only accepts confirmed bookings. A second cancel is a conflict,
// not a no-op.
func CanCancel(current Status) error {
	switch current {
	case StatusConfirmed:
		return nil
	case StatusCancelled:
		return httperr.ErrConflict("already_cancelled")
	default:
		return httperr.ErrConflict("invalid_state")
	}
}

// Transition validates an edge of the state machine
// (none -> confirmed -> cancelled).
func Transition(from, to Status) error {
	switch {
	case from == "" && to == StatusConfirmed:
		return nil
	case to == StatusCancelled:
		return CanCancel(from)
	default:
		return httperr.ErrConflict("invalid_transition")
	}
}

func InitialStatus() Status {
	return StatusConfirmed
}
