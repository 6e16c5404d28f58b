package restaurant

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booktable/internal/audit"
	"github.com/BruksfildServices01/booktable/internal/domain/availability"
	domain "github.com/BruksfildServices01/booktable/internal/domain/restaurant"
	"github.com/BruksfildServices01/booktable/internal/models"
	"github.com/BruksfildServices01/booktable/internal/validators"
)

type ReplaceConfigurationInput struct {
	RestaurantID uint
	ManagerID    string
	Hours        []models.OperatingHours
	Slots        []models.TimeSlot
	Tables       []models.TableConfiguration
}

type ReplaceConfiguration struct {
	repo        domain.Repository
	writer      availability.ConfigurationWriter
	invalidator availability.Invalidator
	audit       *audit.Dispatcher
	log         zerolog.Logger
}

// invalidator may be nil when no cache is configured.
func NewReplaceConfiguration(
	repo domain.Repository,
	writer availability.ConfigurationWriter,
	invalidator availability.Invalidator,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *ReplaceConfiguration {
	return &ReplaceConfiguration{
		repo:        repo,
		writer:      writer,
		invalidator: invalidator,
		audit:       audit,
		log:         log,
	}
}

// Execute swaps the whole hours/slots/tables configuration at once.
func (uc *ReplaceConfiguration) Execute(
	ctx context.Context,
	in ReplaceConfigurationInput,
) error {

	if _, err := ownedBy(ctx, uc.repo, in.RestaurantID, in.ManagerID); err != nil {
		return err
	}

	if err := validators.ValidateConfiguration(in.Hours, in.Slots, in.Tables); err != nil {
		return err
	}

	if err := uc.writer.ReplaceConfiguration(
		ctx,
		in.RestaurantID,
		in.Hours,
		in.Slots,
		in.Tables,
	); err != nil {
		return err
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx, in.RestaurantID); err != nil {
			// Entries expire on their own after the cache TTL.
			uc.log.Error().Err(err).Uint("restaurant_id", in.RestaurantID).Msg("config cache invalidation failed")
		}
	}

	uc.audit.Dispatch(audit.Event{
		RestaurantID: in.RestaurantID,
		ActorID:      in.ManagerID,
		Action:       "configuration_replaced",
		Entity:       "restaurant",
		EntityID:     &in.RestaurantID,
		Metadata: map[string]any{
			"hours":  len(in.Hours),
			"slots":  len(in.Slots),
			"tables": len(in.Tables),
		},
	})

	return nil
}
