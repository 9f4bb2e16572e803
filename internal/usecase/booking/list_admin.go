package booking

import (
	"context"

	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/models"
)

type ListAdminBookings struct {
	repo domain.Repository
}

func NewListAdminBookings(repo domain.Repository) *ListAdminBookings {
	return &ListAdminBookings{repo: repo}
}

// Execute returns every booking for the admin dashboard, grouped by status,
// newest days on top, slots in order within a day.
func (uc *ListAdminBookings) Execute(
	ctx context.Context,
) ([]models.Booking, error) {
	return uc.repo.ListAllBookings(ctx)
}
