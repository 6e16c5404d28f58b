package booking

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/audit"
	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/config"
	"github.com/BruksfildServices01/booktable/internal/domain/availability"
	domain "github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/metrics"
	"github.com/BruksfildServices01/booktable/internal/models"
	"github.com/BruksfildServices01/booktable/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	RestaurantID uint
	CustomerID   string
	Email        string
	Date         clock.Date
	Time         clock.TimeOfDay
	PartySize    int
}

type BookingOutput struct {
	Booking   *models.Booking `json:"booking"`
	Status    domain.Status   `json:"status"`
	EmailSent bool            `json:"email_sent"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo        domain.Repository
	restaurants restaurant.Repository
	slots       availability.SlotStore
	notifier    domain.Notifier
	audit       *audit.Dispatcher
	metrics     *metrics.Metrics
	guard       config.CapacityGuard
	log         zerolog.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	restaurants restaurant.Repository,
	slots availability.SlotStore,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	guard config.CapacityGuard,
	log zerolog.Logger,
) *CreateBooking {
	if guard == "" {
		guard = config.GuardLocking
	}
	return &CreateBooking{
		repo:        repo,
		restaurants: restaurants,
		slots:       slots,
		notifier:    notifier,
		audit:       audit,
		metrics:     m,
		guard:       guard,
		log:         log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute persists a confirmed booking. The confirmation mail is best
// effort; its outcome is only reported through EmailSent. In locking mode
// the restaurant must be approved and the time must sit on its slot grid.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*BookingOutput, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, httperr.ErrInvalid("customer_required")
	}
	if in.PartySize <= 0 {
		return nil, httperr.ErrInvalid("invalid_party_size")
	}
	if in.Date.IsZero() {
		return nil, httperr.ErrInvalid("invalid_date")
	}
	if !in.Time.Valid() {
		return nil, httperr.ErrInvalid("invalid_time")
	}
	if in.Email != "" && !validators.IsEmailValid(in.Email) {
		return nil, httperr.ErrInvalid("invalid_email")
	}

	// --------------------------------------------------
	// 2. Restaurant
	// --------------------------------------------------
	rest, err := uc.restaurants.GetRestaurant(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}

	if uc.guard == config.GuardLocking {
		if err := uc.checkBookable(ctx, rest, in); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3. Insert (optionally capacity guarded)
	// --------------------------------------------------
	b := &models.Booking{
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		CustomerID:     in.CustomerID,
		Email:          in.Email,
		BookingDate:    in.Date,
		BookingTime:    in.Time,
		PartySize:      in.PartySize,
		Status:         domain.InitialStatus(),
	}

	if uc.guard == config.GuardLocking {
		err = uc.repo.CreateBookingGuarded(ctx, b)
	} else {
		err = uc.repo.CreateBooking(ctx, b)
	}
	if err != nil {
		if httperr.IsBusiness(err, "over_capacity") {
			uc.metrics.IncRejected("over_capacity")
			uc.audit.Dispatch(audit.Event{
				RestaurantID: rest.ID,
				ActorID:      in.CustomerID,
				Action:       "booking_rejected",
				Entity:       "booking",
				Metadata: map[string]any{
					"date":       in.Date.String(),
					"time":       in.Time.String(),
					"party_size": in.PartySize,
					"reason":     "over_capacity",
				},
			})
		}
		return nil, err
	}

	uc.metrics.IncCreated(string(uc.guard))

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		RestaurantID: rest.ID,
		ActorID:      in.CustomerID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &b.ID,
		Metadata: map[string]any{
			"date":       b.BookingDate.String(),
			"time":       b.BookingTime.String(),
			"party_size": b.PartySize,
		},
	})

	// --------------------------------------------------
	// 5. Confirmation mail
	// --------------------------------------------------
	sent := uc.notifier.SendBookingConfirmation(ctx, b)
	if !sent {
		uc.metrics.IncNotificationFailure("confirmation")
		uc.log.Warn().Uint("booking_id", b.ID).Msg("booking confirmation e-mail not sent")
	}

	return &BookingOutput{
		Booking:   b,
		Status:    b.Status,
		EmailSent: sent,
	}, nil
}

func (uc *CreateBooking) checkBookable(
	ctx context.Context,
	rest *models.Restaurant,
	in CreateBookingInput,
) error {

	if !rest.Approved {
		uc.metrics.IncRejected("restaurant_not_approved")
		return httperr.ErrConflict("restaurant_not_approved")
	}
	if uc.slots == nil {
		return nil
	}

	grid, err := uc.slots.GetSlots(ctx, rest.ID, in.Date.DayOfWeek())
	if err != nil {
		return err
	}
	if !slices.Contains(grid, in.Time) {
		uc.metrics.IncRejected("slot_not_offered")
		return httperr.ErrInvalid("slot_not_offered")
	}
	return nil
}
