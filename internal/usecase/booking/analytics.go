package booking

import (
	"context"
	"math"
	"time"

	"github.com/BruksfildServices01/booktable/internal/clock"
	domain "github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

const (
	popularLimit      = 10
	maxAnalyticsRange = 366
)

// AnalyticsInput is an inclusive date range. A zero range means the
// current calendar month in UTC.
type AnalyticsInput struct {
	From clock.Date
	To   clock.Date
}

type ReservationReport struct {
	From                      clock.Date                   `json:"from"`
	To                        clock.Date                   `json:"to"`
	TotalReservations         int                          `json:"total_reservations"`
	ByStatus                  map[models.BookingStatus]int `json:"by_status"`
	AverageReservationsPerDay float64                      `json:"average_reservations_per_day"`
	MostPopularRestaurants    []domain.RestaurantBookings  `json:"most_popular_restaurants"`
}

type ReservationAnalytics struct {
	stats domain.Analytics
	now   func() time.Time
}

func NewReservationAnalytics(stats domain.Analytics) *ReservationAnalytics {
	return &ReservationAnalytics{stats: stats, now: time.Now}
}

func (uc *ReservationAnalytics) WithClock(now func() time.Time) *ReservationAnalytics {
	uc.now = now
	return uc
}

func (uc *ReservationAnalytics) Execute(
	ctx context.Context,
	in AnalyticsInput,
) (*ReservationReport, error) {

	from, to := in.From, in.To
	switch {
	case from.IsZero() && to.IsZero():
		t := uc.now().UTC()
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		from = clock.DateOf(first)
		to = clock.DateOf(first.AddDate(0, 1, -1))
	case from.IsZero() || to.IsZero():
		return nil, httperr.ErrInvalid("invalid_date_range")
	}
	if to.Before(from) || from.DaysThrough(to) > maxAnalyticsRange {
		return nil, httperr.ErrInvalid("invalid_date_range")
	}

	byStatus, err := uc.stats.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, err
	}

	popular, err := uc.stats.PopularRestaurants(ctx, from, to, popularLimit)
	if err != nil {
		return nil, err
	}
	if popular == nil {
		popular = []domain.RestaurantBookings{}
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	avg := float64(total) / float64(from.DaysThrough(to))

	return &ReservationReport{
		From:                      from,
		To:                        to,
		TotalReservations:         total,
		ByStatus:                  byStatus,
		AverageReservationsPerDay: math.Round(avg*100) / 100,
		MostPopularRestaurants:    popular,
	}, nil
}
