package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics records latency and outcomes for reservation operations.
type BookingMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewBookingMetrics registers the booking metrics on the provided registerer.
func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	if reg == nil {
		return &BookingMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "booking_operation_duration_seconds",
		Help:    "Duration of reservation engine operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_operation_outcomes_total",
		Help: "Reservation engine operation outcomes by result code.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(duration, outcomes)
	return &BookingMetrics{
		duration: duration,
		outcomes: outcomes,
	}
}

// ObserveDuration records the duration for the named operation.
func (b *BookingMetrics) ObserveDuration(operation string, duration time.Duration) {
	if b == nil || b.duration == nil {
		return
	}
	b.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncOutcome increments the outcome counter for the named operation.
func (b *BookingMetrics) IncOutcome(operation, outcome string) {
	if b == nil || b.outcomes == nil {
		return
	}
	b.outcomes.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
