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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Combat Metrics
var (
	AttackRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAttackRolls,
			Help: HelpTextAttackRolls,
		},
		[]string{LabelMode},
	)

	AttackOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAttackOutcomes,
			Help: HelpTextAttackOutcomes,
		},
		[]string{LabelOutcome},
	)

	DamageDealt = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDamageDealt,
			Help:    HelpTextDamageDealt,
			Buckets: DamageBuckets,
		},
	)

	Combinations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCombinations,
			Help: HelpTextCombinations,
		},
	)
)

// Grant Metrics
var (
	GrantsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGrantsIssued,
			Help: HelpTextGrantsIssued,
		},
		[]string{LabelKind},
	)

	GrantDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGrantDeliveries,
			Help: HelpTextGrantDeliveries,
		},
		[]string{LabelKind, LabelRedelivery},
	)

	GrantsAcknowledged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGrantsAcknowledged,
			Help: HelpTextGrantsAcknowledged,
		},
		[]string{LabelKind},
	)

	GrantsPending = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameGrantsPending,
			Help: HelpTextGrantsPending,
		},
		[]string{LabelKind},
	)
)
