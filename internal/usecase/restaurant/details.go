package restaurant

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/clock"
	"github.com/BruksfildServices01/booktable/internal/domain/availability"
	domain "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/domain/review"
	"github.com/BruksfildServices01/booktable/internal/models"
	"github.com/BruksfildServices01/booktable/internal/timezone"
)

type DaySlots struct {
	DayOfWeek int               `json:"day_of_week"`
	Times     []clock.TimeOfDay `json:"times"`
}

type PhotoView struct {
	models.Photo
	URL string `json:"url,omitempty"`
}

type Details struct {
	Restaurant    models.Restaurant           `json:"restaurant"`
	Hours         []models.OperatingHours     `json:"operating_hours"`
	Slots         []DaySlots                  `json:"time_slots"`
	Tables        []models.TableConfiguration `json:"tables"`
	TotalCapacity int                         `json:"total_capacity"`
	Photos        []PhotoView                 `json:"photos"`
	BookingsToday int                         `json:"bookings_today"`
	AverageRating float64                     `json:"average_rating"`
	ReviewCount   int                         `json:"review_count"`
	Reviews       []models.Review             `json:"reviews"`
}

type FetchDetails struct {
	repo    domain.Repository
	hours   availability.HoursStore
	slots   availability.SlotStore
	tables  availability.TableStore
	ledger  availability.BookingLedger
	photos  domain.PhotoStore
	reviews review.Repository
	log     zerolog.Logger
}

// photos may be nil; URLs are then left empty. reviews may be nil.
func NewFetchDetails(
	repo domain.Repository,
	hours availability.HoursStore,
	slots availability.SlotStore,
	tables availability.TableStore,
	ledger availability.BookingLedger,
	photos domain.PhotoStore,
	reviews review.Repository,
	log zerolog.Logger,
) *FetchDetails {
	return &FetchDetails{
		repo:    repo,
		hours:   hours,
		slots:   slots,
		tables:  tables,
		ledger:  ledger,
		photos:  photos,
		reviews: reviews,
		log:     log,
	}
}

func (uc *FetchDetails) Execute(
	ctx context.Context,
	restaurantID uint,
) (*Details, error) {

	r, err := uc.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	hours, err := uc.hours.ListHours(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.slots.ListSlots(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	tables, err := uc.tables.ListTables(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	photos, err := uc.repo.ListPhotos(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	d := &Details{
		Restaurant:    *r,
		Hours:         hours,
		Slots:         groupSlots(rows),
		Tables:        tables,
		TotalCapacity: availability.TotalCapacity(tables),
		Photos:        make([]PhotoView, 0, len(photos)),
		Reviews:       []models.Review{},
	}

	for _, p := range photos {
		view := PhotoView{Photo: p}
		if uc.photos != nil {
			if u, err := uc.photos.PresignDownload(ctx, p.ObjectKey); err == nil {
				view.URL = u.URL
			} else {
				uc.log.Warn().Err(err).Str("key", p.ObjectKey).Msg("photo url unavailable")
			}
		}
		d.Photos = append(d.Photos, view)
	}

	today := clock.DateOf(timezone.NowIn(r.Timezone))
	counts, err := uc.ledger.CountByRestaurants(ctx, []uint{restaurantID}, today)
	if err != nil {
		uc.log.Error().Err(err).Uint("restaurant_id", restaurantID).Msg("booking count unavailable")
	} else {
		d.BookingsToday = counts[restaurantID]
	}

	uc.addReviews(ctx, d)
	return d, nil
}

// addReviews leaves the review fields empty when the store fails.
func (uc *FetchDetails) addReviews(ctx context.Context, d *Details) {
	if uc.reviews == nil {
		return
	}
	id := d.Restaurant.ID

	reviews, err := uc.reviews.ListByRestaurant(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Uint("restaurant_id", id).Msg("reviews unavailable")
		return
	}
	if len(reviews) == 0 {
		return
	}

	summaries, err := uc.reviews.RatingSummaries(ctx, []uint{id})
	if err != nil {
		uc.log.Error().Err(err).Uint("restaurant_id", id).Msg("rating unavailable")
		return
	}

	d.Reviews = reviews
	d.AverageRating = summaries[id].AverageRating
	d.ReviewCount = summaries[id].ReviewCount
}

// groupSlots expects rows ordered by day then time.
func groupSlots(rows []models.TimeSlot) []DaySlots {
	out := make([]DaySlots, 0, 7)
	for _, s := range rows {
		if n := len(out); n == 0 || out[n-1].DayOfWeek != s.DayOfWeek {
			out = append(out, DaySlots{DayOfWeek: s.DayOfWeek})
		}
		last := &out[len(out)-1]
		last.Times = append(last.Times, s.SlotTime)
	}
	return out
}
