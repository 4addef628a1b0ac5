// Package metrics exposes the daemon's Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

const namespace = "virtool"

type Metrics struct {
	// CallsTotal counts finished API calls. Labels: op, outcome.
	CallsTotal *prometheus.CounterVec
	// CallDuration measures API call latency. Labels: op.
	CallDuration *prometheus.HistogramVec
	// InFlight tracks calls currently running. Labels: op.
	InFlight *prometheus.GaugeVec
	// DiscardedTotal counts stale results dropped by the latest policy.
	DiscardedTotal *prometheus.CounterVec
	// CoalescedTotal counts requests folded into a throttle window.
	CoalescedTotal *prometheus.CounterVec

	PushEventsTotal   *prometheus.CounterVec
	PushReconnects    prometheus.Counter
	PushConnected     prometheus.Gauge
	ReportsDropped    prometheus.Counter
	ActionsDispatched *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Finished Virtool API calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		CallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Virtool API call latency.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"op"}),
		InFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "calls_in_flight",
			Help:      "Virtool API calls currently running.",
		}, []string{"op"}),
		DiscardedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "effects",
			Name:      "results_discarded_total",
			Help:      "Results dropped because a newer request superseded them.",
		}, []string{"op"}),
		CoalescedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "effects",
			Name:      "requests_coalesced_total",
			Help:      "Requests folded into a pending throttle window.",
		}, []string{"op"}),
		PushEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "events_total",
			Help:      "Push events received by interface and operation.",
		}, []string{"interface", "operation"}),
		PushReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "reconnects_total",
			Help:      "WebSocket reconnect attempts.",
		}),
		PushConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "connected",
			Help:      "1 while the push WebSocket is open.",
		}),
		ReportsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "dropped_total",
			Help:      "Error reports dropped because the queue was full.",
		}),
		ActionsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "actions_total",
			Help:      "Actions applied to the state tree by phase.",
		}, []string{"phase"}),
	}

	reg.MustRegister(
		m.CallsTotal,
		m.CallDuration,
		m.InFlight,
		m.DiscardedTotal,
		m.CoalescedTotal,
		m.PushEventsTotal,
		m.PushReconnects,
		m.PushConnected,
		m.ReportsDropped,
		m.ActionsDispatched,
	)

	return m
}

func (m *Metrics) CallStarted(op action.Name) {
	m.InFlight.WithLabelValues(string(op)).Inc()
}

func (m *Metrics) CallFinished(op action.Name, outcome string, took time.Duration) {
	m.InFlight.WithLabelValues(string(op)).Dec()
	m.CallsTotal.WithLabelValues(string(op), outcome).Inc()
	m.CallDuration.WithLabelValues(string(op)).Observe(took.Seconds())
}

func (m *Metrics) ResultDiscarded(op action.Name) {
	m.DiscardedTotal.WithLabelValues(string(op)).Inc()
}

func (m *Metrics) RequestCoalesced(op action.Name) {
	m.CoalescedTotal.WithLabelValues(string(op)).Inc()
}

func (m *Metrics) ReportDropped() {
	m.ReportsDropped.Inc()
}

func (m *Metrics) PushReceived(iface, op string) {
	m.PushEventsTotal.WithLabelValues(iface, op).Inc()
}

func (m *Metrics) PushReconnecting() {
	m.PushReconnects.Inc()
}

func (m *Metrics) PushConnectionChanged(up bool) {
	if up {
		m.PushConnected.Set(1)
		return
	}
	m.PushConnected.Set(0)
}

// Observe counts every applied action. It runs as a store observer.
func (m *Metrics) Observe(a action.Action) {
	m.ActionsDispatched.WithLabelValues(phaseLabel(a.Type().Phase)).Inc()
}

func phaseLabel(p action.Phase) string {
	switch p {
	case action.PhaseRequested:
		return "requested"
	case action.PhaseSucceeded:
		return "succeeded"
	case action.PhaseFailed:
		return "failed"
	}
	return "local"
}
