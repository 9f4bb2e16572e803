package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/royalrinse/carwash-booking/internal/config"
	domain "github.com/royalrinse/carwash-booking/internal/domain/booking"
	"github.com/royalrinse/carwash-booking/internal/dto"
	"github.com/royalrinse/carwash-booking/internal/httperr"
	"github.com/royalrinse/carwash-booking/internal/httpresp"
	"github.com/royalrinse/carwash-booking/internal/session"
	ucBooking "github.com/royalrinse/carwash-booking/internal/usecase/booking"
)

// SessionCookie carries the caller's opaque session token between booking
// creation and payment. The X-Session-Token header works as well.
const SessionCookie = "rr_session"

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	cfg            *config.Config
	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
	scheduleUC     *ucBooking.ListSchedule
	sessions       *session.Store
}

func NewPublicHandler(
	cfg *config.Config,
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
	scheduleUC *ucBooking.ListSchedule,
	sessions *session.Store,
) *PublicHandler {
	return &PublicHandler{
		cfg:            cfg,
		createUC:       createUC,
		availabilityUC: availabilityUC,
		scheduleUC:     scheduleUC,
		sessions:       sessions,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Service      string `json:"service"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
	Address      string `json:"address" binding:"required"`
	Notes        string `json:"notes"`
}

// ======================================================
// SITE INFO
// ======================================================

func (h *PublicHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"site":         h.cfg.SiteName,
		"phone":        h.cfg.ContactPhone,
		"email":        h.cfg.ContactEmail,
		"location":     h.cfg.Location,
		"current_year": time.Now().UTC().Year(),
	})
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, domain.Catalogue())
}

// ======================================================
// SLOTS
// ======================================================

func (h *PublicHandler) Slots(c *gin.Context) {
	date := c.Query("date")

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		// A missing or malformed date is not fatal on this surface.
		if httperr.IsBusiness(err, httperr.CodeInvalidDate) {
			c.JSON(http.StatusOK, gin.H{"slots": []string{}})
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Please fill in all required fields.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Service:      req.Service,
		Date:         req.Date,
		Time:         req.Time,
		Address:      req.Address,
		Notes:        req.Notes,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeMissingField:
			httperr.BadRequest(c, httperr.CodeMissingField, "Please fill in all required fields.")
		case httperr.CodeInvalidDate:
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date format.")
		case httperr.CodeInvalidEmail:
			httperr.BadRequest(c, httperr.CodeInvalidEmail, "Invalid email address.")
		case httperr.CodeSlotUnavailable:
			httperr.Conflict(c, httperr.CodeSlotUnavailable, "Time slot already booked. Please select another.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
		}
		return
	}

	// Hand the caller a session token so the payment step can find the
	// booking without process-wide state.
	token := h.sessions.NewToken()
	if err := h.sessions.SetPendingBooking(c.Request.Context(), token, b.ID); err != nil {
		httperr.Internal(c, "failed_to_create_session", "Could not start the payment session.")
		return
	}

	c.SetCookie(SessionCookie, token, int((30 * time.Minute).Seconds()), "/", "", false, true)

	httpresp.Created(c, gin.H{
		"booking":       b,
		"session_token": token,
	})
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *PublicHandler) Schedule(c *gin.Context) {
	bookings, date, err := h.scheduleUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedule", "Could not load the schedule.")
		return
	}

	entries := make([]dto.ScheduleEntryDTO, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, dto.ScheduleEntryDTO{
			ID:           b.ID,
			Time:         b.Time,
			CustomerName: b.CustomerName,
			Service:      b.Service,
			Amount:       b.Amount,
			Technician:   b.Technician,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"bookings": entries,
	})
}
