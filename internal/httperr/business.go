package httperr

import "errors"

// Business error codes surfaced by the booking core.
const (
	CodeMissingField        = "missing_field"
	CodeInvalidDate         = "invalid_date"
	CodeInvalidEmail        = "invalid_email"
	CodeSlotUnavailable     = "slot_unavailable"
	CodeSlotTaken           = "slot_taken"
	CodeInvalidPaymentInput = "invalid_payment_input"
	CodeAlreadyPaid         = "already_paid"
	CodeUnknownAction       = "unknown_action"
	CodeInvalidTransition   = "invalid_transition"
	CodeBookingNotFound     = "booking_not_found"
	CodeNoPendingBooking    = "no_pending_booking"
	CodeUnauthorized        = "unauthorized"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" for any other error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
