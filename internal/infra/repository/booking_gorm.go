package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking (create / read)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListApprovedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("date = ? AND status = ?", date, string(domain.StatusApproved)).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListScheduleForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status = ? AND paid = ?", date, string(domain.StatusApproved), true).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("status ASC").
		Order("date DESC").
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ApproveBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Lock every booking at the slot, whatever its status. Filtering the
		// lock to approved rows would lock nothing while the slot is only
		// contested by pending bookings, letting two approvals slip through
		// side by side; locking the full holder set serializes them, and the
		// losing transaction re-reads the winner's committed status.
		q := tx.Where("date = ? AND time = ?", b.Date, b.Time)

		// sqlite has no FOR UPDATE; its transactions serialize writers anyway.
		if tx.Dialector.Name() != "sqlite" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var holders []models.Booking
		if err := q.Find(&holders).Error; err != nil {
			return err
		}

		for _, other := range holders {
			if other.ID != b.ID && other.Status == string(domain.StatusApproved) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
		}

		return tx.Save(b).Error
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
