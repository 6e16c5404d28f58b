package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/audit"
	domain "github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/metrics"
)

type CancelBooking struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
	metrics  *metrics.Metrics
	log      zerolog.Logger
	now      func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	log zerolog.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		metrics:  m,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute cancels a confirmed booking. customerID, when not empty, must own
// the booking. A booking that is already cancelled yields a Conflict.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	customerID string,
) (*BookingOutput, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if customerID != "" && b.CustomerID != customerID {
		return nil, httperr.ErrForbidden("not_booking_owner")
	}

	if err := domain.Cancel(b, uc.now()); err != nil {
		return nil, err
	}

	ok, err := uc.repo.MarkCancelled(ctx, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost the race to a concurrent cancel.
		current, err := uc.repo.GetBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if err := domain.CanCancel(current.Status); err != nil {
			return nil, err
		}
		return nil, httperr.ErrConflict("cancel_failed")
	}

	uc.metrics.IncCancelled()
	uc.audit.Dispatch(audit.Event{
		RestaurantID: b.RestaurantID,
		ActorID:      b.CustomerID,
		Action:       "booking_cancelled",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	sent := uc.notifier.SendBookingCancellation(ctx, b)
	if !sent {
		uc.metrics.IncNotificationFailure("cancellation")
		uc.log.Warn().Uint("booking_id", b.ID).Msg("booking cancellation e-mail not sent")
	}

	return &BookingOutput{
		Booking:   b,
		Status:    b.Status,
		EmailSent: sent,
	}, nil
}
