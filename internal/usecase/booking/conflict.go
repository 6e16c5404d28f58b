package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/booktable/internal/clock"
	domain "github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/httperr"
)

type CheckConflict struct {
	repo domain.Repository
}

func NewCheckConflict(repo domain.Repository) *CheckConflict {
	return &CheckConflict{repo: repo}
}

// Execute looks for another confirmed booking of the customer on the same
// date within one hour, bounds included. The window stops at midnight.
func (uc *CheckConflict) Execute(
	ctx context.Context,
	customerID string,
	date clock.Date,
	at clock.TimeOfDay,
) (*domain.ConflictResult, error) {

	if strings.TrimSpace(customerID) == "" {
		return nil, httperr.ErrInvalid("customer_required")
	}
	if date.IsZero() {
		return nil, httperr.ErrInvalid("invalid_date")
	}
	if !at.Valid() {
		return nil, httperr.ErrInvalid("invalid_time")
	}

	from, to := clock.Window(at, domain.ConflictWindow)

	b, err := uc.repo.FindConflict(ctx, customerID, date, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.ConflictResult{
		HasConflict:        b != nil,
		ConflictingBooking: b,
	}, nil
}
