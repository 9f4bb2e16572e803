package booking

import (
	"context"

	"github.com/royalrinse/carwash-booking/internal/models"
)

type Repository interface {
	// -------- Booking (create / read) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// -------- Availability --------
	ListApprovedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Listings --------
	ListScheduleForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	ListAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// ApproveBooking persists an approval under a transactional
	// check-and-set: it fails with slot_taken if another approved booking
	// already holds the same (date, time).
	ApproveBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
