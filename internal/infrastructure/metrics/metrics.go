// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portalkit"

// Metrics holds all Prometheus metrics
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AuthorizationDecisions *prometheus.CounterVec
	FeatureGateOutcomes    *prometheus.CounterVec
	SubscribeOutcomes      *prometheus.CounterVec
	OTPSends               *prometheus.CounterVec
	ChatReplies            *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthorizationDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "authorization_decisions_total",
				Help:      "Permission checks by decision reason",
			},
			[]string{"reason", "allowed"},
		),
		FeatureGateOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feature_gate_outcomes_total",
				Help:      "Feature gate evaluations by feature and outcome",
			},
			[]string{"feature", "outcome"},
		),
		SubscribeOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "subscribe_outcomes_total",
				Help:      "Subscribe attempts by outcome",
			},
			[]string{"outcome"},
		),
		OTPSends: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "otp_sends_total",
				Help:      "One-time codes issued by flow and outcome",
			},
			[]string{"flow", "outcome"},
		),
		ChatReplies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_replies_total",
				Help:      "AI chat replies by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthorizationDecisions,
		m.FeatureGateOutcomes,
		m.SubscribeOutcomes,
		m.OTPSends,
		m.ChatReplies,
	)

	return m
}

// NewNop returns collectors registered on a private registry.
func NewNop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordDecision(reason string, allowed bool) {
	m.AuthorizationDecisions.WithLabelValues(reason, strconv.FormatBool(allowed)).Inc()
}

// RecordFeatureGate counts a gate evaluation. fallback marks decisions taken
// on the configured fallback set.
func (m *Metrics) RecordFeatureGate(feature string, allowed, fallback bool) {
	outcome := "denied"
	if allowed {
		outcome = "allowed"
	}
	if fallback {
		outcome += "_fallback"
	}
	m.FeatureGateOutcomes.WithLabelValues(feature, outcome).Inc()
}

func (m *Metrics) RecordSubscribe(outcome string) {
	m.SubscribeOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordOTPSend(flow, outcome string) {
	m.OTPSends.WithLabelValues(flow, outcome).Inc()
}

func (m *Metrics) RecordChatReply(outcome string) {
	m.ChatReplies.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
