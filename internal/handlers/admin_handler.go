package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/httpresp"
	"github.com/royalrinse/carwash-booking/internal/middleware"
	ucBooking "github.com/royalrinse/carwash-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	listUC       *ucBooking.ListAdminBookings
	transitionUC *ucBooking.TransitionBooking
}

func NewAdminHandler(
	listUC *ucBooking.ListAdminBookings,
	transitionUC *ucBooking.TransitionBooking,
) *AdminHandler {
	return &AdminHandler{
		listUC:       listUC,
		transitionUC: transitionUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ActionRequest struct {
	Action     string `json:"action" binding:"required"`
	Technician string `json:"technician"`
}

// ======================================================
// LIST
// ======================================================

func (h *AdminHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// ACTION (approve / reject / complete)
// ======================================================

func (h *AdminHandler) Action(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "An action is required.")
		return
	}

	b, err := h.transitionUC.Execute(c.Request.Context(), ucBooking.TransitionInput{
		BookingID:  uint(id),
		Action:     req.Action,
		Technician: req.Technician,
		AdminID:    adminID,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeUnknownAction:
			httperr.BadRequest(c, httperr.CodeUnknownAction, "Unknown action.")
		case httperr.CodeInvalidTransition:
			httperr.Conflict(c, httperr.CodeInvalidTransition, "Booking cannot take this action in its current state.")
		case httperr.CodeSlotTaken:
			httperr.Conflict(c, httperr.CodeSlotTaken, "Another approved booking already holds this slot.")
		case httperr.CodeBookingNotFound:
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Could not update the booking.")
		}
		return
	}

	httpresp.OK(c, b)
}
