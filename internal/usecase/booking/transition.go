package booking

import (
	"context"

	"github.com/royalrinse/carwash-booking/internal/audit"
	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/metrics"
	"github.com/royalrinse/carwash-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type TransitionInput struct {
	BookingID  uint
	Action     string
	Technician string
	AdminID    uint
}

// ======================================================
// USE CASE
// ======================================================

type TransitionBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionBooking {
	return &TransitionBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *TransitionBooking) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Booking, error) {

	action, err := domain.ParseAction(in.Action)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Apply(b, action, in.Technician); err != nil {
		return nil, err
	}

	// Approval re-checks slot ownership inside a transaction; the create-time
	// availability check alone cannot stop two concurrent approvals.
	if action == domain.ActionApprove {
		err = uc.repo.ApproveBooking(ctx, b)
	} else {
		err = uc.repo.UpdateBooking(ctx, b)
	}
	if err != nil {
		return nil, err
	}

	metrics.IncTransition(string(action))

	uc.audit.Dispatch(audit.Event{
		AdminID:  &in.AdminID,
		Action:   "booking_" + b.Status,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
