package availability

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/domain/review"
	"github.com/BruksfildServices01/booktable/internal/timezone"
)

// NearbyLead is how far ahead of now a walk-in search looks.
const NearbyLead = 30 * time.Minute

type NearbyInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// NearbyNow lists restaurants around a point with a table for one shortly
// from now, each evaluated in its own timezone.
type NearbyNow struct {
	finder  restaurant.Finder
	engine  *Engine
	ratings review.Summaries
	log     zerolog.Logger
	now     func() time.Time
}

func NewNearbyNow(
	finder restaurant.Finder,
	engine *Engine,
	ratings review.Summaries,
	log zerolog.Logger,
) *NearbyNow {
	return &NearbyNow{
		finder:  finder,
		engine:  engine,
		ratings: ratings,
		log:     log,
		now:     time.Now,
	}
}

func (uc *NearbyNow) WithClock(now func() time.Time) *NearbyNow {
	uc.now = now
	return uc
}

func (uc *NearbyNow) Execute(
	ctx context.Context,
	in NearbyInput,
) ([]SearchResult, error) {

	candidates, err := uc.finder.FindCandidates(ctx, restaurant.Query{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		RadiusKm:  in.RadiusKm,
	})
	if err != nil {
		return nil, err
	}

	target := uc.now().Add(NearbyLead)

	results := make([]SearchResult, 0, len(candidates))
	for _, c := range candidates {
		local := timezone.In(target, c.Restaurant.Timezone)
		date := clock.DateOf(local)

		slots, err := uc.engine.availableSlots(ctx, SlotsInput{
			RestaurantID:  c.Restaurant.ID,
			Date:          date,
			RequestedTime: clock.FromTime(local),
			PartySize:     1,
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
			Date:           date,
			AvailableSlots: slots,
		})
	}

	addRatings(ctx, uc.ratings, uc.log, results)
	return results, nil
}
