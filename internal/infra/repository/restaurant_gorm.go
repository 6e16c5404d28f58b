package repository

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
)

const (
	earthRadiusKm   = 6371.0
	kmPerDegreeLat  = 111.32
	defaultRadiusKm = 10.0
	defaultLimit    = 20
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

// --------------------------------------------------
// Restaurant
// --------------------------------------------------

func (r *RestaurantGormRepository) CreateRestaurant(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	return r.db.WithContext(ctx).Create(rest).Error
}

func (r *RestaurantGormRepository) GetRestaurant(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	err := r.db.WithContext(ctx).First(&rest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("restaurant_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) SetApproved(
	ctx context.Context,
	id uint,
	approved bool,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		Update("approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("restaurant_not_found")
	}
	return nil
}

func (r *RestaurantGormRepository) UpdateMainPhoto(
	ctx context.Context,
	id uint,
	key string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		Update("main_photo_key", key).Error
}

func (r *RestaurantGormRepository) UpdateRestaurant(
	ctx context.Context,
	rest *models.Restaurant,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", rest.ID).
		Select(
			"name", "cuisine_type", "cost_rating", "description", "contact_phone",
			"address_line", "city", "state", "zip_code", "country",
			"latitude", "longitude", "timezone", "updated_at",
		).
		Updates(rest)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("restaurant_not_found")
	}
	return nil
}

func (r *RestaurantGormRepository) DeleteRestaurant(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Restaurant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("restaurant_not_found")
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *RestaurantGormRepository) ListByManager(
	ctx context.Context,
	managerID string,
) ([]models.Restaurant, error) {

	var rows []models.Restaurant
	if err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RestaurantGormRepository) ListByApproval(
	ctx context.Context,
	approved bool,
) ([]models.Restaurant, error) {

	var rows []models.Restaurant
	if err := r.db.WithContext(ctx).
		Where("approved = ?", approved).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

func (r *RestaurantGormRepository) AddPhoto(
	ctx context.Context,
	p *models.Photo,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *RestaurantGormRepository) ListPhotos(
	ctx context.Context,
	restaurantID uint,
) ([]models.Photo, error) {

	var photos []models.Photo
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("uploaded_at DESC, id DESC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// --------------------------------------------------
// Geospatial candidates
// --------------------------------------------------

// FindCandidates narrows with a bounding box in SQL and ranks by great
// circle distance.
func (r *RestaurantGormRepository) FindCandidates(
	ctx context.Context,
	q restaurant.Query,
) ([]restaurant.Candidate, error) {

	radius := q.RadiusKm
	if radius <= 0 {
		radius = defaultRadiusKm
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	dLat := radius / kmPerDegreeLat
	dLng := radius / (kmPerDegreeLat * math.Max(math.Cos(q.Latitude*math.Pi/180), 0.01))

	tx := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Where("latitude BETWEEN ? AND ?", q.Latitude-dLat, q.Latitude+dLat).
		Where("longitude BETWEEN ? AND ?", q.Longitude-dLng, q.Longitude+dLng)

	if text := strings.TrimSpace(q.Text); text != "" {
		like := "%" + strings.ToLower(text) + "%"
		tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(cuisine_type) LIKE ?)", like, like)
	}

	var rows []models.Restaurant
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]restaurant.Candidate, 0, len(rows))
	for _, rest := range rows {
		d := Haversine(q.Latitude, q.Longitude, rest.Latitude, rest.Longitude)
		if d > radius {
			continue
		}
		out = append(out, restaurant.Candidate{Restaurant: rest, DistanceKm: d})
	}

	slices.SortStableFunc(out, func(a, b restaurant.Candidate) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return int(a.Restaurant.ID) - int(b.Restaurant.ID)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Haversine returns the distance in kilometres between two coordinates.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// Compile-time check
var (
	_ restaurant.Repository = (*RestaurantGormRepository)(nil)
	_ restaurant.Finder     = (*RestaurantGormRepository)(nil)
)
