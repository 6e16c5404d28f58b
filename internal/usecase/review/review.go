package review

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/booktable/internal/audit"
	"github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	domain "github.com/BruksfildServices01/booktable/internal/domain/review"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

const maxReviewText = 1000

// ======================================================
// ADD
// ======================================================

type AddReviewInput struct {
	RestaurantID uint
	CustomerID   string
	UserName     string
	Rating       int
	Text         string
}

type AddReview struct {
	repo        domain.Repository
	restaurants restaurant.Repository
	audit       *audit.Dispatcher
}

func NewAddReview(
	repo domain.Repository,
	restaurants restaurant.Repository,
	audit *audit.Dispatcher,
) *AddReview {
	return &AddReview{
		repo:        repo,
		restaurants: restaurants,
		audit:       audit,
	}
}

// Execute records a customer's rating of an approved restaurant.
func (uc *AddReview) Execute(
	ctx context.Context,
	in AddReviewInput,
) (*models.Review, error) {

	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, httperr.ErrInvalid("customer_required")
	}
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return nil, httperr.ErrInvalid("invalid_rating")
	}
	text := strings.TrimSpace(in.Text)
	if len(text) > maxReviewText {
		return nil, httperr.ErrInvalid("review_too_long")
	}

	rest, err := uc.restaurants.GetRestaurant(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !rest.Approved {
		return nil, httperr.ErrConflict("restaurant_not_approved")
	}

	r := &models.Review{
		RestaurantID: rest.ID,
		CustomerID:   in.CustomerID,
		UserName:     strings.TrimSpace(in.UserName),
		Rating:       in.Rating,
		ReviewText:   text,
	}
	if err := uc.repo.AddReview(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: rest.ID,
		ActorID:      in.CustomerID,
		Action:       "review_added",
		Entity:       "review",
		EntityID:     &r.ID,
		Metadata:     map[string]any{"rating": r.Rating},
	})

	return r, nil
}

// ======================================================
// LIST
// ======================================================

type RestaurantReviews struct {
	domain.Summary
	Reviews []models.Review `json:"reviews"`
}

type ListReviews struct {
	repo        domain.Repository
	restaurants restaurant.Repository
}

func NewListReviews(repo domain.Repository, restaurants restaurant.Repository) *ListReviews {
	return &ListReviews{repo: repo, restaurants: restaurants}
}

func (uc *ListReviews) Execute(
	ctx context.Context,
	restaurantID uint,
) (*RestaurantReviews, error) {

	if _, err := uc.restaurants.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	reviews, err := uc.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	out := &RestaurantReviews{Reviews: reviews}
	if len(reviews) > 0 {
		summaries, err := uc.repo.RatingSummaries(ctx, []uint{restaurantID})
		if err != nil {
			return nil, err
		}
		out.Summary = summaries[restaurantID]
	}
	return out, nil
}
