package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booktable"

// Metrics holds the booking and availability counters. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	BookingsCreated      *prometheus.CounterVec
	BookingsCancelled    prometheus.Counter
	BookingsRejected     *prometheus.CounterVec
	AvailabilityChecks   *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
}

// New registers the counters on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		BookingsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Bookings persisted, by capacity guard mode",
			},
			[]string{"guard"},
		),

		BookingsCancelled: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_cancelled_total",
				Help:      "Bookings moved to cancelled",
			},
		),

		BookingsRejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_rejected_total",
				Help:      "Booking attempts rejected, by reason",
			},
			[]string{"reason"},
		),

		AvailabilityChecks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_checks_total",
				Help:      "Availability computations, by outcome",
			},
			[]string{"outcome"},
		),

		NotificationFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_failures_total",
				Help:      "Booking e-mails that could not be delivered",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) IncCreated(guard string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(guard).Inc()
}

func (m *Metrics) IncCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelled.Inc()
}

func (m *Metrics) IncRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

// ObserveAvailability records whether a check produced any open slot.
func (m *Metrics) ObserveAvailability(found bool) {
	if m == nil {
		return
	}
	outcome := "empty"
	if found {
		outcome = "available"
	}
	m.AvailabilityChecks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncNotificationFailure(kind string) {
	if m == nil {
		return
	}
	m.NotificationFailures.WithLabelValues(kind).Inc()
}
