package restaurant

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/audit"
	"github.com/BruksfildServices01/booktable/internal/domain/availability"
	domain "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/httperr"
	"github.com/BruksfildServices01/booktable/internal/models"
	"github.com/BruksfildServices01/booktable/internal/timezone"
	"github.com/BruksfildServices01/booktable/internal/validators"
)

// ======================================================
// UPDATE
// ======================================================

type UpdateRestaurantInput struct {
	RestaurantID uint
	CreateRestaurantInput
}

type UpdateRestaurant struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateRestaurant(repo domain.Repository, audit *audit.Dispatcher) *UpdateRestaurant {
	return &UpdateRestaurant{repo: repo, audit: audit}
}

// Execute rewrites the descriptive fields of a restaurant the manager owns.
func (uc *UpdateRestaurant) Execute(
	ctx context.Context,
	in UpdateRestaurantInput,
) (*models.Restaurant, error) {

	current, err := ownedBy(ctx, uc.repo, in.RestaurantID, in.ManagerID)
	if err != nil {
		return nil, err
	}

	tz := in.Timezone
	if tz == "" {
		tz = current.Timezone
	}
	if tz == "" {
		tz = timezone.Default()
	}

	r := *current
	r.Name = strings.TrimSpace(in.Name)
	r.CuisineType = in.CuisineType
	r.CostRating = in.CostRating
	r.Description = in.Description
	r.ContactPhone = in.ContactPhone
	r.AddressLine = in.AddressLine
	r.City = in.City
	r.State = in.State
	r.ZipCode = in.ZipCode
	r.Country = in.Country
	r.Latitude = in.Latitude
	r.Longitude = in.Longitude
	r.Timezone = tz

	if err := validators.ValidateRestaurant(&r); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRestaurant(ctx, &r); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict("restaurant_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: r.ID,
		ActorID:      in.ManagerID,
		Action:       "restaurant_updated",
		Entity:       "restaurant",
		EntityID:     &r.ID,
	})

	return &r, nil
}

// ======================================================
// LISTINGS
// ======================================================

type ListRestaurants struct {
	repo domain.Repository
}

func NewListRestaurants(repo domain.Repository) *ListRestaurants {
	return &ListRestaurants{repo: repo}
}

// ByManager returns every restaurant of the manager, approved or not.
func (uc *ListRestaurants) ByManager(
	ctx context.Context,
	managerID string,
) ([]models.Restaurant, error) {

	if strings.TrimSpace(managerID) == "" {
		return nil, httperr.ErrInvalid("manager_required")
	}
	return uc.repo.ListByManager(ctx, managerID)
}

// Pending returns restaurants waiting for an admin decision.
func (uc *ListRestaurants) Pending(ctx context.Context) ([]models.Restaurant, error) {
	return uc.repo.ListByApproval(ctx, false)
}

// ======================================================
// REMOVE
// ======================================================

type RemoveRestaurant struct {
	repo        domain.Repository
	invalidator availability.Invalidator
	audit       *audit.Dispatcher
	log         zerolog.Logger
}

// invalidator may be nil when no cache is configured.
func NewRemoveRestaurant(
	repo domain.Repository,
	invalidator availability.Invalidator,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *RemoveRestaurant {
	return &RemoveRestaurant{
		repo:        repo,
		invalidator: invalidator,
		audit:       audit,
		log:         log,
	}
}

// Execute soft deletes the restaurant. Its bookings stay in the ledger.
func (uc *RemoveRestaurant) Execute(
	ctx context.Context,
	restaurantID uint,
	actorID string,
) error {

	if err := uc.repo.DeleteRestaurant(ctx, restaurantID); err != nil {
		return err
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx, restaurantID); err != nil {
			uc.log.Error().Err(err).Uint("restaurant_id", restaurantID).Msg("config cache invalidation failed")
		}
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: restaurantID,
		ActorID:      actorID,
		Action:       "restaurant_removed",
		Entity:       "restaurant",
		EntityID:     &restaurantID,
	})
	return nil
}
