package restaurant

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/booktable/internal/audit"
	domain "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
	"github.com/BruksfildServices01/booktable/internal/timezone"
	"github.com/BruksfildServices01/booktable/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateRestaurantInput struct {
	ManagerID string

	Name         string
	CuisineType  string
	CostRating   int
	Description  string
	ContactPhone string

	AddressLine string
	City        string
	State       string
	ZipCode     string
	Country     string

	Latitude  float64
	Longitude float64
	Timezone  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRestaurant struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRestaurant(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateRestaurant {
	return &CreateRestaurant{
		repo:  repo,
		audit: audit,
	}
}

// Execute stores a new restaurant awaiting approval.
func (uc *CreateRestaurant) Execute(
	ctx context.Context,
	in CreateRestaurantInput,
) (*models.Restaurant, error) {

	if strings.TrimSpace(in.ManagerID) == "" {
		return nil, httperr.ErrInvalid("manager_required")
	}

	tz := in.Timezone
	if tz == "" {
		tz = timezone.Default()
	}

	r := &models.Restaurant{
		ManagerID:    in.ManagerID,
		Name:         strings.TrimSpace(in.Name),
		CuisineType:  in.CuisineType,
		CostRating:   in.CostRating,
		Description:  in.Description,
		ContactPhone: in.ContactPhone,
		AddressLine:  in.AddressLine,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Timezone:     tz,
	}

	if err := validators.ValidateRestaurant(r); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateRestaurant(ctx, r); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict("restaurant_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: r.ID,
		ActorID:      in.ManagerID,
		Action:       "restaurant_created",
		Entity:       "restaurant",
		EntityID:     &r.ID,
	})

	return r, nil
}

// ======================================================
// APPROVAL
// ======================================================

type ApproveRestaurant struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveRestaurant(repo domain.Repository, audit *audit.Dispatcher) *ApproveRestaurant {
	return &ApproveRestaurant{repo: repo, audit: audit}
}

// Execute makes a restaurant visible to search, or hides it again.
func (uc *ApproveRestaurant) Execute(
	ctx context.Context,
	restaurantID uint,
	approved bool,
	actorID string,
) error {

	if err := uc.repo.SetApproved(ctx, restaurantID, approved); err != nil {
		return err
	}

	action := "restaurant_approved"
	if !approved {
		action = "restaurant_unapproved"
	}
	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		ActorID:      actorID,
		Action:       action,
		Entity:       "restaurant",
		EntityID:     &restaurantID,
	})
	return nil
}

// ownedBy loads the restaurant and checks the manager.
func ownedBy(
	ctx context.Context,
	repo domain.Repository,
	restaurantID uint,
	managerID string,
) (*models.Restaurant, error) {

	r, err := repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if r.ManagerID != managerID {
		return nil, httperr.ErrForbidden("not_restaurant_manager")
	}
	return r, nil
}
