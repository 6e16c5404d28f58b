package review

import (
	"context"

	"github.com/BruksfildServices01/booktable/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Summary is the aggregate rating of one restaurant. A restaurant without
// reviews has a zero Summary.
type Summary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

type Repository interface {
	AddReview(
		ctx context.Context,
		r *models.Review,
	) error

	// ListByRestaurant returns newest first.
	ListByRestaurant(
		ctx context.Context,
		restaurantID uint,
	) ([]models.Review, error)

	Summaries
}

// Summaries aggregates ratings for many restaurants in one query. Ids
// without reviews are absent from the result.
type Summaries interface {
	RatingSummaries(
		ctx context.Context,
		restaurantIDs []uint,
	) (map[uint]Summary, error)
}
