// Package observability bundles the Prometheus instruments the bot records.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the bot's Prometheus instruments. A nil *Metrics disables
// recording, so callers never need to guard individual observations.
type Metrics struct {
	turns         *prometheus.CounterVec
	dialogBegins  *prometheus.CounterVec
	ordersPlaced  prometheus.Counter
	orderValue    prometheus.Histogram
	turnFailures  prometheus.Counter
}

// NewMetrics creates and registers the bot's instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderbot_turns_total",
				Help: "Total number of processed turns, by top-scoring intent.",
			},
			[]string{"intent"},
		),
		dialogBegins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orderbot_dialog_begins_total",
				Help: "Total number of dialogs begun, by dialog ID.",
			},
			[]string{"dialog"},
		),
		ordersPlaced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orderbot_orders_placed_total",
				Help: "Total number of orders placed.",
			},
		),
		orderValue: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orderbot_order_value_dollars",
				Help:    "Value of placed orders in dollars.",
				Buckets: []float64{1, 2.5, 5, 10, 25, 50},
			},
		),
		turnFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orderbot_turn_failures_total",
				Help: "Total number of turns that hit the top-level error handler.",
			},
		),
	}
	reg.MustRegister(m.turns, m.dialogBegins, m.ordersPlaced, m.orderValue, m.turnFailures)
	return m
}

// ObserveTurn records a processed turn with its top intent.
func (m *Metrics) ObserveTurn(intent string) {
	if m == nil {
		return
	}
	m.turns.WithLabelValues(intent).Inc()
}

// ObserveDialogBegin records a dialog being begun.
func (m *Metrics) ObserveDialogBegin(dialogID string) {
	if m == nil {
		return
	}
	m.dialogBegins.WithLabelValues(dialogID).Inc()
}

// ObserveOrderPlaced records a placed order and its value.
func (m *Metrics) ObserveOrderPlaced(total float64) {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.orderValue.Observe(total)
}

// ObserveTurnFailure records a turn recovered by the top-level handler.
func (m *Metrics) ObserveTurnFailure() {
	if m == nil {
		return
	}
	m.turnFailures.Inc()
}
