package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted by the create operation.",
		},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "booking_transitions_total",
			Help:      "Lifecycle transitions by action.",
		},
		[]string{"action"},
	)

	paymentsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carwash",
			Name:      "payments_accepted_total",
			Help:      "Mock payments that marked a booking paid.",
		},
	)
)

// Register registers Prometheus collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			bookingsCreated,
			bookingTransitions,
			paymentsAccepted,
		)
	})
}

func IncHTTP(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncTransition(action string) {
	bookingTransitions.WithLabelValues(action).Inc()
}

func IncPaymentAccepted() {
	paymentsAccepted.Inc()
}
