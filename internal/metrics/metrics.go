// Package metrics holds the Prometheus collectors of the relay.
// They register on the default registry served by the monitoring server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK        = "ok"
	ResultError     = "error"
	ResultRejected  = "rejected"
	ResultDuplicate = "duplicate"
	ResultIgnored   = "ignored"
)

var (
	CallbacksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_relay_callbacks_received_total",
		Help: "The total number of webhook callbacks, by verification result",
	}, []string{"result"})

	EventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_relay_events_received_total",
		Help: "The total number of webhook events, by event type",
	}, []string{"type"})

	Replies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_relay_replies_total",
		Help: "The total number of echo replies, by result",
	}, []string{"result"})

	Pushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_relay_pushes_total",
		Help: "The total number of push requests, by result",
	}, []string{"result"})

	EventCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "line_relay_event_cache_entries",
		Help: "Webhook event ids currently remembered for redelivery detection",
	})

	DeliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "line_relay_delivery_duration_seconds",
		Help:    "Latency of outbound Messaging API calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)
