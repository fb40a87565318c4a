package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resthouse"

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	// BookingsTotal counts booking lifecycle events by outcome.
	BookingsTotal *prometheus.CounterVec

	// RegistrationsTotal counts account registrations by role.
	RegistrationsTotal *prometheus.CounterVec

	// LoginsTotal counts login attempts by result.
	LoginsTotal *prometheus.CounterVec

	// HTTPRequestDuration is the per-route request latency.
	HTTPRequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on the given registerer. Tests pass a
// fresh registry so repeated construction does not panic.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_total",
				Help:      "Total number of booking lifecycle events",
			},
			[]string{"event"},
		),

		RegistrationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total number of account registrations",
			},
			[]string{"role"},
		),

		LoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Total number of login attempts",
			},
			[]string{"result"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   []float64{.01, .05, .1, .5, 1, 2, 5},
			},
			[]string{"method", "route", "status"},
		),
	}
}

// Booking lifecycle event labels.
const (
	BookingEventCreated      = "created"
	BookingEventApproved     = "approved"
	BookingEventRejected     = "rejected"
	BookingEventPayOnArrival = "pay_on_rest_house"
	BookingEventDeleted      = "deleted"
)

// Login result labels.
const (
	LoginResultSuccess = "success"
	LoginResultFailure = "failure"
)
