package booking

import (
	"context"
	"time"

	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/models"
)

type ListSchedule struct {
	repo domain.Repository
}

func NewListSchedule(repo domain.Repository) *ListSchedule {
	return &ListSchedule{repo: repo}
}

// Execute lists the approved and paid bookings for a day, ordered by slot.
// A missing or malformed date falls back to today rather than failing.
func (uc *ListSchedule) Execute(
	ctx context.Context,
	date string,
) ([]models.Booking, string, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		date = time.Now().Format("2006-01-02")
	}

	bookings, err := uc.repo.ListScheduleForDate(ctx, date)
	if err != nil {
		return nil, date, err
	}

	return bookings, date, nil
}
