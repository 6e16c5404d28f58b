package booking

import (
	"context"

	domain "github.com/BruksfildServices01/booktable/internal/domain/booking"
	"github.com/BruksfildServices01/booktable/internal/httperr"
)

type ListCustomerBookings struct {
	repo domain.Repository
}

func NewListCustomerBookings(repo domain.Repository) *ListCustomerBookings {
	return &ListCustomerBookings{repo: repo}
}

// Execute returns the customer's bookings, most recent first.
func (uc *ListCustomerBookings) Execute(
	ctx context.Context,
	customerID string,
) ([]BookingOutput, error) {

	if customerID == "" {
		return nil, httperr.ErrInvalid("customer_required")
	}

	bookings, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingOutput, 0, len(bookings))
	for i := range bookings {
		out = append(out, BookingOutput{
			Booking: &bookings[i],
			Status:  bookings[i].Status,
		})
	}
	return out, nil
}
