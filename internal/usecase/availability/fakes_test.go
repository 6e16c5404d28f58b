package availability

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/domain/review"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

type dayKey struct {
	restaurantID uint
	dow          int
}

type slotKey struct {
	restaurantID uint
	date         clock.Date
	at           clock.TimeOfDay
}

// fakeStore is an in-memory stand-in for every store the engine reads.
type fakeStore struct {
	hours       map[dayKey]*models.OperatingHours
	grid        map[dayKey][]clock.TimeOfDay
	capacity    map[uint]int
	booked      map[slotKey]int
	counts      map[uint]int
	countsErr   error
	ledgerCalls int
	candidates  []restaurant.Candidate
	unknown     map[uint]bool
	ratings     map[uint]review.Summary
	ratingsErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hours:    map[dayKey]*models.OperatingHours{},
		grid:     map[dayKey][]clock.TimeOfDay{},
		capacity: map[uint]int{},
		booked:   map[slotKey]int{},
		counts:   map[uint]int{},
		unknown:  map[uint]bool{},
		ratings:  map[uint]review.Summary{},
	}
}

func (f *fakeStore) open(id uint, dow int, open, close string) {
	o := clock.MustParse(open)
	c := clock.MustParse(close)
	f.hours[dayKey{id, dow}] = &models.OperatingHours{RestaurantID: id, DayOfWeek: dow, OpenTime: &o, CloseTime: &c}
}

func (f *fakeStore) slots(id uint, dow int, times ...string) {
	for _, s := range times {
		f.grid[dayKey{id, dow}] = append(f.grid[dayKey{id, dow}], clock.MustParse(s))
	}
}

func (f *fakeStore) book(id uint, date, at string, party int) {
	f.booked[slotKey{id, clock.MustParseDate(date), clock.MustParse(at)}] += party
}

func (f *fakeStore) GetRestaurant(_ context.Context, id uint) (*models.Restaurant, error) {
	if f.unknown[id] {
		return nil, httperr.ErrNotFound("restaurant_not_found")
	}
	return &models.Restaurant{ID: id}, nil
}

func (f *fakeStore) GetHours(_ context.Context, id uint, dow int) (*models.OperatingHours, error) {
	return f.hours[dayKey{id, dow}], nil
}

func (f *fakeStore) ListHours(context.Context, uint) ([]models.OperatingHours, error) {
	return nil, nil
}

func (f *fakeStore) GetSlots(_ context.Context, id uint, dow int) ([]clock.TimeOfDay, error) {
	return f.grid[dayKey{id, dow}], nil
}

func (f *fakeStore) ListSlots(context.Context, uint) ([]models.TimeSlot, error) {
	return nil, nil
}

func (f *fakeStore) TotalCapacity(_ context.Context, id uint) (int, error) {
	return f.capacity[id], nil
}

func (f *fakeStore) ListTables(context.Context, uint) ([]models.TableConfiguration, error) {
	return nil, nil
}

func (f *fakeStore) BookedCapacity(
	_ context.Context,
	id uint,
	date clock.Date,
	slots []clock.TimeOfDay,
) (map[clock.TimeOfDay]int, error) {
	f.ledgerCalls++
	out := make(map[clock.TimeOfDay]int, len(slots))
	for _, s := range slots {
		out[s] = f.booked[slotKey{id, date, s}]
	}
	return out, nil
}

func (f *fakeStore) CountByRestaurants(_ context.Context, ids []uint, _ clock.Date) (map[uint]int, error) {
	if f.countsErr != nil {
		return nil, f.countsErr
	}
	out := make(map[uint]int, len(ids))
	for _, id := range ids {
		out[id] = f.counts[id]
	}
	return out, nil
}

func (f *fakeStore) FindCandidates(context.Context, restaurant.Query) ([]restaurant.Candidate, error) {
	return f.candidates, nil
}

func (f *fakeStore) RatingSummaries(_ context.Context, ids []uint) (map[uint]review.Summary, error) {
	if f.ratingsErr != nil {
		return nil, f.ratingsErr
	}
	out := make(map[uint]review.Summary, len(ids))
	for _, id := range ids {
		if s, ok := f.ratings[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

var errStore = errors.New("store down")
