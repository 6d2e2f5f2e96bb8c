package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Combat metric names
const (
	MetricNameAttackRolls    = "attack_rolls_total"
	MetricNameAttackOutcomes = "attack_outcomes_total"
	MetricNameDamageDealt    = "damage_dealt"
	MetricNameCombinations   = "attack_combinations_total"
)

// Grant metric names
const (
	MetricNameGrantsIssued       = "grants_issued_total"
	MetricNameGrantDeliveries    = "grant_deliveries_total"
	MetricNameGrantsAcknowledged = "grants_acknowledged_total"
	MetricNameGrantsPending      = "grants_pending"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Combat metric help text
const (
	HelpTextAttackRolls    = "Total number of resolved attacks by advantage mode"
	HelpTextAttackOutcomes = "Total number of resolved attacks by outcome"
	HelpTextDamageDealt    = "Damage dealt per resolved attack"
	HelpTextCombinations   = "Total number of attack combinations run"
)

// Grant metric help text
const (
	HelpTextGrantsIssued       = "Total number of grants issued"
	HelpTextGrantDeliveries    = "Total number of grant deliveries, including redeliveries"
	HelpTextGrantsAcknowledged = "Total number of grants acknowledged by clients"
	HelpTextGrantsPending      = "Grants awaiting acknowledgement"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelMode       = "mode"
	LabelOutcome    = "outcome"
	LabelKind       = "kind"
	LabelRedelivery = "redelivery"
)

// Attack outcome label values
const (
	OutcomeCriticalHit = "critical_hit"
	OutcomeHit         = "hit"
	OutcomeMiss        = "miss"
	OutcomeFumble      = "fumble"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DamageBuckets covers a single die up to a large critical
var DamageBuckets = []float64{0, 1, 2, 4, 6, 8, 12, 16, 24, 32, 48, 64, 100}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
