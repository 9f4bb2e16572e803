package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/royalrinse/carwash-booking/internal/config"
	"github.com/royalrinse/carwash-booking/internal/models"
	"github.com/royalrinse/carwash-booking/internal/routes"
)

const adminPassword = "1234"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Booking{}, &models.AdminUser{}, &models.AuditLog{}))

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		Name:         "Administrator",
		Email:        "admin@royalrinse.local",
		PasswordHash: string(hashed),
		Role:         "admin",
	}).Error)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		SiteName:     "Royal Rinse",
		ContactPhone: "76716978",
		ContactEmail: "royalrinse07@gmail.com",
		Location:     "Mbabane, Sdwashini",
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, rdb, cfg, zerolog.Nop())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@royalrinse.local",
		"password": adminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createBooking(t *testing.T, r *gin.Engine, date, slot, service string) (uint, string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"customer_name": "Thandi M",
		"phone":         "76000000",
		"service":       service,
		"date":          date,
		"time":          slot,
		"address":       "12 Main Rd",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode(t, w)
	booking := resp["booking"].(map[string]any)
	token := resp["session_token"].(string)
	require.NotEmpty(t, token)

	return uint(booking["id"].(float64)), token
}

func slotsFor(t *testing.T, r *gin.Engine, date string) []string {
	t.Helper()

	w := doJSON(t, r, http.MethodGet, "/api/slots?date="+date, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Slots
}

// ======================================================
// PUBLIC SURFACE
// ======================================================

func TestSlotsFullDay(t *testing.T) {
	r := newTestRouter(t)

	slots := slotsFor(t, r, "2025-06-01")
	assert.Len(t, slots, 9)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "16:00", slots[8])
}

func TestSlotsMalformedDateIsEmptyNotError(t *testing.T) {
	r := newTestRouter(t)

	for _, q := range []string{"/api/slots", "/api/slots?date=garbage"} {
		w := doJSON(t, r, http.MethodGet, q, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Slots []string `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Slots)
	}
}

func TestListServices(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/services", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.EqualValues(t, 3, resp["total"])
}

func TestInfo(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/info", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Royal Rinse", resp["site"])
	assert.Equal(t, "Mbabane, Sdwashini", resp["location"])
}

func TestCreateBookingMissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"customer_name": "Thandi M",
		"phone":         "76000000",
		"date":          "2025-06-01",
		"time":          "10:00",
		// no address
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_field", decode(t, w)["error_code"])
}

func TestCreateBookingInvalidDate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"customer_name": "Thandi M",
		"phone":         "76000000",
		"date":          "junk",
		"time":          "10:00",
		"address":       "12 Main Rd",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", decode(t, w)["error_code"])
}

func TestPendingBookingsDoNotBlockSlot(t *testing.T) {
	r := newTestRouter(t)

	createBooking(t, r, "2025-06-01", "11:00", "basic")
	createBooking(t, r, "2025-06-01", "11:00", "deluxe")

	// two pending bookings can hold one slot until one is approved
	assert.Contains(t, slotsFor(t, r, "2025-06-01"), "11:00")
}

// ======================================================
// FULL LIFECYCLE
// ======================================================

func TestBookingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// Book the royal tier for 2025-06-01 at 10:00.
	id, sessionToken := createBooking(t, r, "2025-06-01", "10:00", "royal")

	// Pay via the session reference.
	w := doJSON(t, r, http.MethodPost, "/api/payment", gin.H{
		"card_number": "4111111111111111",
		"exp":         "12/27",
		"cvv":         "123",
	}, map[string]string{"X-Session-Token": sessionToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	paid := decode(t, w)["booking"].(map[string]any)
	assert.Equal(t, true, paid["paid"])
	assert.Equal(t, 50.0, paid["amount"])
	assert.Equal(t, "pending", paid["status"])

	// The session reference is one-shot.
	w = doJSON(t, r, http.MethodPost, "/api/payment", gin.H{
		"card_number": "4111111111111111",
		"cvv":         "123",
	}, map[string]string{"X-Session-Token": sessionToken})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no_pending_booking", decode(t, w)["error_code"])

	// Approve with a technician.
	adminToken := loginAdmin(t, r)
	auth := map[string]string{"Authorization": "Bearer " + adminToken}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/bookings/%d/action", id), gin.H{
		"action":     "approve",
		"technician": "Sam",
	}, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	approved := decode(t, w)
	assert.Equal(t, "approved", approved["status"])
	assert.Equal(t, "Sam", approved["technician"])

	// The approved slot leaves the availability list.
	slots := slotsFor(t, r, "2025-06-01")
	assert.NotContains(t, slots, "10:00")
	assert.Len(t, slots, 8)

	// It appears on the day schedule (approved and paid).
	w = doJSON(t, r, http.MethodGet, "/api/schedule?date=2025-06-01", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	schedule := decode(t, w)
	entries := schedule["bookings"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "10:00", entry["time"])
	assert.Equal(t, "Sam", entry["technician"])

	// Booking the taken slot again fails and persists nothing.
	w = doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"customer_name": "Sipho D",
		"phone":         "76111111",
		"date":          "2025-06-01",
		"time":          "10:00",
		"address":       "3 Hill St",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_unavailable", decode(t, w)["error_code"])

	// Unknown actions are reported and change nothing.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/bookings/%d/action", id), gin.H{
		"action": "archive",
	}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unknown_action", decode(t, w)["error_code"])

	// Complete the approved booking.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/bookings/%d/action", id), gin.H{
		"action": "complete",
	}, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decode(t, w)["status"])

	// Completed bookings accept no further actions.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/bookings/%d/action", id), gin.H{
		"action": "approve",
	}, auth)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_transition", decode(t, w)["error_code"])
}

func TestSecondApprovalOnSlotConflicts(t *testing.T) {
	r := newTestRouter(t)

	first, _ := createBooking(t, r, "2025-06-01", "09:00", "basic")
	second, _ := createBooking(t, r, "2025-06-01", "09:00", "basic")

	adminToken := loginAdmin(t, r)
	auth := map[string]string{"Authorization": "Bearer " + adminToken}

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/bookings/%d/action", first), gin.H{
		"action": "approve",
	}, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/bookings/%d/action", second), gin.H{
		"action": "approve",
	}, auth)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_taken", decode(t, w)["error_code"])
}

// ======================================================
// PAYMENT EDGE CASES
// ======================================================

func TestPaymentWithoutSession(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payment", gin.H{
		"card_number": "4111111111111111",
		"cvv":         "123",
	}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no_pending_booking", decode(t, w)["error_code"])
}

func TestPaymentRejectsShortCard(t *testing.T) {
	r := newTestRouter(t)

	_, sessionToken := createBooking(t, r, "2025-06-01", "08:00", "basic")

	w := doJSON(t, r, http.MethodPost, "/api/payment", gin.H{
		"card_number": "4111",
		"cvv":         "123",
	}, map[string]string{"X-Session-Token": sessionToken})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_payment_input", decode(t, w)["error_code"])

	// The session reference survives a failed attempt.
	w = doJSON(t, r, http.MethodPost, "/api/payment", gin.H{
		"card_number": "4111111111111111",
		"cvv":         "123",
	}, map[string]string{"X-Session-Token": sessionToken})
	assert.Equal(t, http.StatusOK, w.Code)
}

// ======================================================
// ADMIN AUTH
// ======================================================

func TestAdminSurfaceRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@royalrinse.local",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListBookings(t *testing.T) {
	r := newTestRouter(t)

	createBooking(t, r, "2025-06-01", "10:00", "deluxe")
	createBooking(t, r, "2025-06-02", "11:00", "basic")

	adminToken := loginAdmin(t, r)
	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil, map[string]string{
		"Authorization": "Bearer " + adminToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.EqualValues(t, 2, decode(t, w)["total"])
}

func TestLogoutRevokesToken(t *testing.T) {
	r := newTestRouter(t)

	adminToken := loginAdmin(t, r)
	auth := map[string]string{"Authorization": "Bearer " + adminToken}

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil, auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
