package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the speaker registration pipeline.
type Metrics struct {
	// Registrations by final outcome (registered, persist_failed, or the
	// rejecting error code)
	Registrations *prometheus.CounterVec

	// Sessions by decision (approved / rejected)
	Sessions *prometheus.CounterVec

	RegistrationFee  prometheus.Histogram
	PersistFailures  prometheus.Counter
	RegisterDuration prometheus.Histogram
}

// New registers the speaker metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "speakerreg_registrations_total",
			Help: "Speaker registrations by outcome",
		}, []string{"outcome"}),

		Sessions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "speakerreg_sessions_evaluated_total",
			Help: "Talk sessions evaluated by decision",
		}, []string{"decision"}),

		RegistrationFee: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "speakerreg_registration_fee",
			Help:    "Registration fee charged to accepted speakers",
			Buckets: []float64{0, 50, 100, 250, 500},
		}),

		PersistFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "speakerreg_persist_failures_total",
			Help: "Registrations that passed evaluation but could not be saved",
		}),

		RegisterDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "speakerreg_register_duration_seconds",
			Help:    "Duration of the full registration pipeline including persistence",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementOutcome records a pipeline outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Registrations.WithLabelValues(outcome).Inc()
	}
}

// ObserveSessions records approved and rejected session counts.
func (m *Metrics) ObserveSessions(approved, rejected int) {
	if m != nil {
		m.Sessions.WithLabelValues("approved").Add(float64(approved))
		m.Sessions.WithLabelValues("rejected").Add(float64(rejected))
	}
}

// ObserveFee records the computed fee.
func (m *Metrics) ObserveFee(fee int) {
	if m != nil {
		m.RegistrationFee.Observe(float64(fee))
	}
}

// IncrementPersistFailure records a swallowed repository failure.
func (m *Metrics) IncrementPersistFailure() {
	if m != nil {
		m.PersistFailures.Inc()
	}
}

// ObserveRegister records pipeline latency since start.
func (m *Metrics) ObserveRegister(start time.Time) {
	if m != nil {
		m.RegisterDuration.Observe(time.Since(start).Seconds())
	}
}
