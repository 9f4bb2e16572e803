package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/royalrinse/carwash-booking/internal/audit"
	"github.com/royalrinse/carwash-booking/internal/config"
	"github.com/royalrinse/carwash-booking/internal/handlers"
	infraRepo "github.com/royalrinse/carwash-booking/internal/infra/repository"
	"github.com/royalrinse/carwash-booking/internal/middleware"
	"github.com/royalrinse/carwash-booking/internal/session"
	ucBooking "github.com/royalrinse/carwash-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	sessions := session.New(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
	)

	payBookingUC := ucBooking.NewPayBooking(
		bookingRepo,
		auditDispatcher,
	)

	transitionBookingUC := ucBooking.NewTransitionBooking(
		bookingRepo,
		auditDispatcher,
	)

	listScheduleUC := ucBooking.NewListSchedule(
		bookingRepo,
	)

	listAdminBookingsUC := ucBooking.NewListAdminBookings(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		cfg,
		createBookingUC,
		getAvailabilityUC,
		listScheduleUC,
		sessions,
	)

	paymentHandler := handlers.NewPaymentHandler(payBookingUC, sessions)
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)
	adminHandler := handlers.NewAdminHandler(listAdminBookingsUC, transitionBookingUC)

	adminAuth := middleware.AdminAuth(cfg, sessions)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/info", publicHandler.Info)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/slots", publicHandler.Slots)
		api.GET("/schedule", publicHandler.Schedule)

		api.POST("/bookings", publicHandler.CreateBooking)
		api.POST("/payment", paymentHandler.Pay)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", adminAuth, authHandler.Logout)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(adminAuth)
		{
			admin.GET("/bookings", adminHandler.List)
			admin.POST("/bookings/:id/action", adminHandler.Action)
		}
	}
}
