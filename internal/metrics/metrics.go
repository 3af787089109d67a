package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game Metrics
var (
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsStarted,
			Help: HelpTextSessionsStarted,
		},
	)

	Answers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnswers,
			Help: HelpTextAnswers,
		},
		[]string{LabelPhase, LabelResult},
	)

	PhasesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePhasesCompleted,
			Help: HelpTextPhasesCompleted,
		},
		[]string{LabelPhase},
	)

	OffersAnswered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOffersAnswered,
			Help: HelpTextOffersAnswered,
		},
		[]string{LabelChoice},
	)

	Exchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExchanges,
			Help: HelpTextExchanges,
		},
		[]string{LabelNPC},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)
