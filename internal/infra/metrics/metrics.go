// Package metrics exposes prometheus instruments for the request lifecycle.
// All methods are safe to call on a nil *Metrics.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for matching, alerts and realtime fan-out.
type Metrics struct {
	registry *prometheus.Registry

	// Lifecycle transitions by kind: created, accepted, cancelled, completed
	Transitions *prometheus.CounterVec

	// Accept attempts that lost the race
	ClaimConflicts prometheus.Counter

	// Matched donors per created request
	MatchedDonors prometheus.Histogram

	// Alert sends by channel and status: delivered, failed, skipped
	Deliveries *prometheus.CounterVec

	// Badges awarded by name
	BadgesAwarded *prometheus.CounterVec

	// Verified donations
	DonationsVerified prometheus.Counter

	// Currently connected realtime observers
	Observers prometheus.Gauge

	// Events dropped because an observer queue was full
	DroppedEvents prometheus.Counter
}

// New creates a Metrics instance registered on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeflow_request_transitions_total",
			Help: "Blood request lifecycle transitions by kind",
		}, []string{"transition"}),

		ClaimConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifeflow_request_claim_conflicts_total",
			Help: "Accept attempts rejected because the request was already claimed",
		}),

		MatchedDonors: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lifeflow_request_matched_donors",
			Help:    "Number of donors matched for a newly created request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),

		Deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeflow_alert_deliveries_total",
			Help: "Donor alert send outcomes by channel and status",
		}, []string{"channel", "status"}),

		BadgesAwarded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeflow_badges_awarded_total",
			Help: "Milestone badges awarded by name",
		}, []string{"badge"}),

		DonationsVerified: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifeflow_donations_verified_total",
			Help: "Donations verified by hospitals",
		}),

		Observers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lifeflow_broadcast_observers",
			Help: "Currently connected realtime observers",
		}),

		DroppedEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifeflow_broadcast_dropped_events_total",
			Help: "Events dropped for observers whose send queue was full",
		}),
	}
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// IncTransition records a lifecycle transition.
func (m *Metrics) IncTransition(transition string) {
	if m != nil {
		m.Transitions.WithLabelValues(transition).Inc()
	}
}

// IncClaimConflict records a lost accept race.
func (m *Metrics) IncClaimConflict() {
	if m != nil {
		m.ClaimConflicts.Inc()
	}
}

// ObserveMatchedDonors records how many donors a request matched.
func (m *Metrics) ObserveMatchedDonors(n int) {
	if m != nil {
		m.MatchedDonors.Observe(float64(n))
	}
}

// IncDelivery records one alert outcome.
func (m *Metrics) IncDelivery(channel, status string) {
	if m != nil {
		m.Deliveries.WithLabelValues(channel, status).Inc()
	}
}

// IncBadge records an awarded badge.
func (m *Metrics) IncBadge(badge string) {
	if m != nil {
		m.BadgesAwarded.WithLabelValues(badge).Inc()
	}
}

// IncDonationVerified records a verified donation.
func (m *Metrics) IncDonationVerified() {
	if m != nil {
		m.DonationsVerified.Inc()
	}
}

// SetObservers records the current observer count.
func (m *Metrics) SetObservers(n int) {
	if m != nil {
		m.Observers.Set(float64(n))
	}
}

// IncDroppedEvent records an event dropped for a slow observer.
func (m *Metrics) IncDroppedEvent() {
	if m != nil {
		m.DroppedEvents.Inc()
	}
}

// RegisterDB exposes the connection pool stats of db under the given name.
func (m *Metrics) RegisterDB(db *sql.DB, name string) {
	if m != nil {
		m.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
	}
}
