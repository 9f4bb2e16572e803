package booking

import (
	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Apply moves a booking through the lifecycle table. For approve, the
// technician (when supplied) is recorded on the booking.
func Apply(b *models.Booking, action Action, technician string) error {
	next, err := NextStatus(Status(b.Status), action)
	if err != nil {
		return err
	}

	b.Status = string(next)
	if action == ActionApprove && technician != "" {
		b.Technician = technician
	}
	return nil
}

// MarkPaid flips the payment flag. It flips once; a paid booking stays paid.
func MarkPaid(b *models.Booking) error {
	if b.Paid {
		return httperr.ErrBusiness(httperr.CodeAlreadyPaid)
	}
	b.Paid = true
	return nil
}
