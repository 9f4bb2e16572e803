package booking

import (
	"context"
	"time"

	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the open slots for a date in chronological order. A slot is
// open when no approved booking holds it; pending and rejected bookings do
// not block.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	taken, err := uc.repo.ListApprovedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(taken), nil
}
