package availability

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/clock"
	domain "github.com/BruksfildServices01/booktable/internal/domain/availability"
	"github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/domain/review"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SearchInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Text      string
	Date      clock.Date
	Time      clock.TimeOfDay
	PartySize int
	Limit     int
}

type SearchResult struct {
	Restaurant     models.Restaurant `json:"restaurant"`
	DistanceKm     float64           `json:"distance_km"`
	Date           clock.Date        `json:"date"`
	AvailableSlots []clock.TimeOfDay `json:"available_slots"`
	BookingsToday  int               `json:"bookings_today"`
	AverageRating  float64           `json:"average_rating"`
	ReviewCount    int               `json:"review_count"`
}

// ======================================================
// USE CASE
// ======================================================

type SearchRestaurants struct {
	finder  restaurant.Finder
	engine  *Engine
	ledger  domain.BookingLedger
	ratings review.Summaries
	log     zerolog.Logger
}

// ratings may be nil; results then carry no rating.
func NewSearchRestaurants(
	finder restaurant.Finder,
	engine *Engine,
	ledger domain.BookingLedger,
	ratings review.Summaries,
	log zerolog.Logger,
) *SearchRestaurants {
	return &SearchRestaurants{
		finder:  finder,
		engine:  engine,
		ledger:  ledger,
		ratings: ratings,
		log:     log,
	}
}

// Execute keeps only candidates with at least one bookable slot.
func (uc *SearchRestaurants) Execute(
	ctx context.Context,
	in SearchInput,
) ([]SearchResult, error) {

	if in.PartySize <= 0 {
		return nil, httperr.ErrInvalid("invalid_party_size")
	}
	if in.Date.IsZero() {
		return nil, httperr.ErrInvalid("invalid_date")
	}

	candidates, err := uc.finder.FindCandidates(ctx, restaurant.Query{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		RadiusKm:  in.RadiusKm,
		Text:      in.Text,
		Limit:     in.Limit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(candidates))
	ids := make([]uint, 0, len(candidates))

	for _, c := range candidates {
		slots, err := uc.engine.availableSlots(ctx, SlotsInput{
			RestaurantID:  c.Restaurant.ID,
			Date:          in.Date,
			RequestedTime: in.Time,
			PartySize:     in.PartySize,
		})
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			continue
		}

		results = append(results, SearchResult{
			Restaurant:     c.Restaurant,
			DistanceKm:     c.DistanceKm,
			Date:           in.Date,
			AvailableSlots: slots,
		})
		ids = append(ids, c.Restaurant.ID)
	}

	if len(ids) == 0 {
		return results, nil
	}

	// Counts and ratings are decoration: a failure leaves them at zero.
	counts, err := uc.ledger.CountByRestaurants(ctx, ids, in.Date)
	if err != nil {
		uc.log.Error().Err(err).Str("date", in.Date.String()).Msg("booking counts unavailable")
	} else {
		for i := range results {
			results[i].BookingsToday = counts[results[i].Restaurant.ID]
		}
	}

	addRatings(ctx, uc.ratings, uc.log, results)
	return results, nil
}

func addRatings(
	ctx context.Context,
	ratings review.Summaries,
	log zerolog.Logger,
	results []SearchResult,
) {
	if ratings == nil || len(results) == 0 {
		return
	}

	ids := make([]uint, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Restaurant.ID)
	}

	summaries, err := ratings.RatingSummaries(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("ratings unavailable")
		return
	}
	for i := range results {
		s := summaries[results[i].Restaurant.ID]
		results[i].AverageRating = s.AverageRating
		results[i].ReviewCount = s.ReviewCount
	}
}
