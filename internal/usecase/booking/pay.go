package booking

import (
	"context"
	"strings"

	"github.com/royalrinse/carwash-booking/internal/audit"
	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/metrics"
	"github.com/royalrinse/carwash-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CardInput struct {
	CardNumber string
	Exp        string
	CVV        string
}

// ======================================================
// USE CASE
// ======================================================

// PayBooking is the stub boundary where a real payment gateway would plug in.
// Card fields are only length-checked; nothing leaves the process.
type PayBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPayBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PayBooking {
	return &PayBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PayBooking) Execute(
	ctx context.Context,
	bookingID uint,
	card CardInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(card.CardNumber)
	cvv := strings.TrimSpace(card.CVV)

	if len(number) < 12 || len(cvv) < 3 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidPaymentInput)
	}

	if err := domain.MarkPaid(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncPaymentAccepted()

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_paid",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
