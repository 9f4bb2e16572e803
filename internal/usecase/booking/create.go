package booking

import (
	"context"
	"time"

	"github.com/royalrinse/carwash-booking/internal/audit"
	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/metrics"
	"github.com/royalrinse/carwash-booking/internal/models"
	"github.com/royalrinse/carwash-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName string
	Phone        string
	Email        string

	Service string

	Date string // YYYY-MM-DD
	Time string // one of the fixed slots

	Address string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// Required fields
	if in.CustomerName == "" || in.Phone == "" || in.Date == "" || in.Time == "" || in.Address == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	// Calendar date
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	// Email is optional but must look like one when given
	if in.Email != "" && !validators.IsEmailValid(in.Email) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidEmail)
	}

	service := in.Service
	if service == "" {
		service = domain.ServiceBasic
	}

	// The time must be one of the fixed slots at all.
	if !domain.IsSlot(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// And it must still be open. Only approved bookings block a slot, so two
	// pending bookings can legitimately hold the same one.
	taken, err := uc.repo.ListApprovedTimes(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	for _, t := range taken {
		if t == in.Time {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
	}

	b := &models.Booking{
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Email:        in.Email,
		Service:      service,
		Date:         in.Date,
		Time:         in.Time,
		Address:      in.Address,
		Notes:        in.Notes,
		Amount:       domain.PriceFor(service),
		Paid:         false,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
