package repository

import (
	"context"
	"math"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booktable/internal/domain/review"
	"github.com/BruksfildServices01/booktable/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) AddReview(
	ctx context.Context,
	rev *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewGormRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID uint,
) ([]models.Review, error) {

	var rows []models.Review
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type ratingRow struct {
	RestaurantID uint
	Average      float64
	Total        int64
}

func (r *ReviewGormRepository) RatingSummaries(
	ctx context.Context,
	restaurantIDs []uint,
) (map[uint]review.Summary, error) {

	out := make(map[uint]review.Summary, len(restaurantIDs))
	if len(restaurantIDs) == 0 {
		return out, nil
	}

	var rows []ratingRow
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("restaurant_id, AVG(rating) AS average, COUNT(*) AS total").
		Where("restaurant_id IN ?", restaurantIDs).
		Group("restaurant_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.RestaurantID] = review.Summary{
			AverageRating: math.Round(row.Average*10) / 10,
			ReviewCount:   int(row.Total),
		}
	}
	return out, nil
}

var _ review.Repository = (*ReviewGormRepository)(nil)
