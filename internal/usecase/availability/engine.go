package availability

import (
	"context"

	"github.com/BruksfildServices01/booktable/internal/clock"
	domain "github.com/BruksfildServices01/booktable/internal/domain/availability"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/metrics"
	"github.com/BruksfildServices01/booktable/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SlotsInput struct {
	RestaurantID  uint
	Date          clock.Date
	RequestedTime clock.TimeOfDay
	PartySize     int
}

// RestaurantLookup resolves a restaurant id, failing with
// restaurant_not_found when it does not exist.
type RestaurantLookup interface {
	GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
}

// ======================================================
// ENGINE
// ======================================================

// Engine answers which slots of a restaurant can still seat a party. It
// holds no state between calls.
type Engine struct {
	restaurants RestaurantLookup
	hours       domain.HoursStore
	slots       domain.SlotStore
	tables      domain.TableStore
	ledger      domain.BookingLedger
	tolerance   int
	metrics     *metrics.Metrics
}

func NewEngine(
	restaurants RestaurantLookup,
	hours domain.HoursStore,
	slots domain.SlotStore,
	tables domain.TableStore,
	ledger domain.BookingLedger,
	toleranceMinutes int,
	m *metrics.Metrics,
) *Engine {
	if toleranceMinutes < 0 {
		toleranceMinutes = domain.DefaultToleranceMinutes
	}
	return &Engine{
		restaurants: restaurants,
		hours:       hours,
		slots:       slots,
		tables:      tables,
		ledger:      ledger,
		tolerance:   toleranceMinutes,
		metrics:     m,
	}
}

func validDay(dow int) error {
	if dow < 0 || dow > 6 {
		return httperr.ErrInvalid("invalid_day_of_week")
	}
	return nil
}

func (e *Engine) exists(ctx context.Context, restaurantID uint) error {
	if e.restaurants == nil {
		return nil
	}
	_, err := e.restaurants.GetRestaurant(ctx, restaurantID)
	return err
}

func (e *Engine) IsOpenAt(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
	at clock.TimeOfDay,
) (bool, error) {

	if err := validDay(dayOfWeek); err != nil {
		return false, err
	}
	if !at.Valid() {
		return false, httperr.ErrInvalid("invalid_time")
	}
	if err := e.exists(ctx, restaurantID); err != nil {
		return false, err
	}
	return e.isOpenAt(ctx, restaurantID, dayOfWeek, at)
}

func (e *Engine) isOpenAt(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
	at clock.TimeOfDay,
) (bool, error) {

	h, err := e.hours.GetHours(ctx, restaurantID, dayOfWeek)
	if err != nil {
		return false, err
	}
	return domain.IsOpenAt(h, at), nil
}

func (e *Engine) MatchingSlots(
	ctx context.Context,
	restaurantID uint,
	dayOfWeek int,
	requested clock.TimeOfDay,
) ([]clock.TimeOfDay, error) {

	if err := validDay(dayOfWeek); err != nil {
		return nil, err
	}

	grid, err := e.slots.GetSlots(ctx, restaurantID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	return domain.MatchingSlots(grid, requested, e.tolerance), nil
}

func (e *Engine) BookedCapacity(
	ctx context.Context,
	restaurantID uint,
	date clock.Date,
	candidates []clock.TimeOfDay,
) (map[clock.TimeOfDay]int, error) {

	if len(candidates) == 0 {
		return map[clock.TimeOfDay]int{}, nil
	}
	return e.ledger.BookedCapacity(ctx, restaurantID, date, candidates)
}

// AvailableSlots returns, in grid order, the slots near the requested time
// that still have room for the party.
func (e *Engine) AvailableSlots(
	ctx context.Context,
	in SlotsInput,
) ([]clock.TimeOfDay, error) {

	if err := validSlotsInput(in); err != nil {
		return nil, err
	}
	if err := e.exists(ctx, in.RestaurantID); err != nil {
		return nil, err
	}
	return e.availableSlots(ctx, in)
}

func validSlotsInput(in SlotsInput) error {
	if in.PartySize <= 0 {
		return httperr.ErrInvalid("invalid_party_size")
	}
	if in.Date.IsZero() {
		return httperr.ErrInvalid("invalid_date")
	}
	if !in.RequestedTime.Valid() {
		return httperr.ErrInvalid("invalid_time")
	}
	return nil
}

// availableSlots skips the existence check; search and nearby pass ids
// that came from the restaurant table.
func (e *Engine) availableSlots(
	ctx context.Context,
	in SlotsInput,
) ([]clock.TimeOfDay, error) {

	if err := validSlotsInput(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1. Day of week, Sunday = 0
	// --------------------------------------------------
	dow := in.Date.DayOfWeek()

	// --------------------------------------------------
	// 2. Operating hours
	// --------------------------------------------------
	open, err := e.isOpenAt(ctx, in.RestaurantID, dow, in.RequestedTime)
	if err != nil {
		return nil, err
	}
	if !open {
		e.metrics.ObserveAvailability(false)
		return []clock.TimeOfDay{}, nil
	}

	// --------------------------------------------------
	// 3. Slot grid within tolerance
	// --------------------------------------------------
	candidates, err := e.MatchingSlots(ctx, in.RestaurantID, dow, in.RequestedTime)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		e.metrics.ObserveAvailability(false)
		return []clock.TimeOfDay{}, nil
	}

	// --------------------------------------------------
	// 4. Capacity
	// --------------------------------------------------
	total, err := e.tables.TotalCapacity(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}

	booked, err := e.BookedCapacity(ctx, in.RestaurantID, in.Date, candidates)
	if err != nil {
		return nil, err
	}

	free := domain.FreeSlots(candidates, total, booked, in.PartySize)
	e.metrics.ObserveAvailability(len(free) > 0)
	return free, nil
}
