package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/session"
	ucBooking "github.com/royalrinse/carwash-booking/internal/usecase/booking"
)

type PaymentHandler struct {
	payUC    *ucBooking.PayBooking
	sessions *session.Store
}

func NewPaymentHandler(
	payUC *ucBooking.PayBooking,
	sessions *session.Store,
) *PaymentHandler {
	return &PaymentHandler{
		payUC:    payUC,
		sessions: sessions,
	}
}

type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	Exp        string `json:"exp"`
	CVV        string `json:"cvv"`
}

func sessionToken(c *gin.Context) string {
	if token := c.GetHeader("X-Session-Token"); token != "" {
		return token
	}
	if token, err := c.Cookie(SessionCookie); err == nil {
		return token
	}
	return ""
}

// Pay resolves the caller's pending booking and runs the mock card check.
func (h *PaymentHandler) Pay(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		httperr.NotFound(c, httperr.CodeNoPendingBooking, "No booking found. Please make a booking first.")
		return
	}

	bookingID, ok, err := h.sessions.PendingBooking(c.Request.Context(), token)
	if err != nil {
		httperr.Internal(c, "session_error", "Could not resolve the payment session.")
		return
	}
	if !ok {
		httperr.NotFound(c, httperr.CodeNoPendingBooking, "No booking found. Please make a booking first.")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidPaymentInput, "Invalid card details (demo only).")
		return
	}

	b, err := h.payUC.Execute(c.Request.Context(), bookingID, ucBooking.CardInput{
		CardNumber: req.CardNumber,
		Exp:        req.Exp,
		CVV:        req.CVV,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeBookingNotFound:
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
		case httperr.CodeInvalidPaymentInput:
			httperr.BadRequest(c, httperr.CodeInvalidPaymentInput, "Invalid card details (demo only).")
		case httperr.CodeAlreadyPaid:
			httperr.Conflict(c, httperr.CodeAlreadyPaid, "Booking is already paid.")
		default:
			httperr.Internal(c, "failed_to_pay", "Payment could not be processed.")
		}
		return
	}

	// One payment per session reference.
	_ = h.sessions.ClearPendingBooking(c.Request.Context(), token)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"booking": b,
		"message": "Payment successful! Await admin approval.",
	})
}
