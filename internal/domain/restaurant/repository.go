package restaurant

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booktable/internal/models"
)

type Repository interface {
	CreateRestaurant(
		ctx context.Context,
		r *models.Restaurant,
	) error

	GetRestaurant(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	SetApproved(
		ctx context.Context,
		id uint,
		approved bool,
	) error

	UpdateMainPhoto(
		ctx context.Context,
		id uint,
		key string,
	) error

	// UpdateRestaurant writes the descriptive fields; approval and main
	// photo are left untouched.
	UpdateRestaurant(
		ctx context.Context,
		r *models.Restaurant,
	) error

	// DeleteRestaurant soft deletes; the row disappears from every lookup.
	DeleteRestaurant(
		ctx context.Context,
		id uint,
	) error

	// -------- Listings --------
	ListByManager(
		ctx context.Context,
		managerID string,
	) ([]models.Restaurant, error)

	ListByApproval(
		ctx context.Context,
		approved bool,
	) ([]models.Restaurant, error)

	// -------- Photos --------
	AddPhoto(
		ctx context.Context,
		p *models.Photo,
	) error

	ListPhotos(
		ctx context.Context,
		restaurantID uint,
	) ([]models.Photo, error)
}

// Candidate is a restaurant returned by the geospatial lookup.
type Candidate struct {
	Restaurant models.Restaurant
	DistanceKm float64
}

type Query struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Text      string
	Limit     int
}

// Finder ranks approved restaurants by distance.
type Finder interface {
	FindCandidates(
		ctx context.Context,
		q Query,
	) ([]Candidate, error)
}

// PresignedURL is a time-limited direct upload or download link.
type PresignedURL struct {
	URL       string            `json:"url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// PhotoStore is the external object store holding restaurant photos.
type PhotoStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) error
	PresignUpload(ctx context.Context, key string, contentType string) (*PresignedURL, error)
	PresignDownload(ctx context.Context, key string) (*PresignedURL, error)
	Delete(ctx context.Context, keys ...string) error
}
