package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/event"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.AttackResolved,
		event.CombinationCompleted,
		event.GrantIssued,
		event.GrantDelivered,
		event.GrantAcknowledged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.AttackResolved:
		p, err := event.DecodePayload[event.AttackResolvedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		AttackRolls.WithLabelValues(string(p.AdvantageMode)).Inc()
		AttackOutcomes.WithLabelValues(attackOutcome(p)).Inc()
		DamageDealt.Observe(float64(p.DamageDealt))

	case event.CombinationCompleted:
		Combinations.Inc()

	case event.GrantIssued, event.GrantDelivered, event.GrantAcknowledged:
		p, err := event.DecodePayload[event.GrantPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		kind := string(p.Kind)
		switch evt.Type {
		case event.GrantIssued:
			GrantsIssued.WithLabelValues(kind).Inc()
		case event.GrantDelivered:
			GrantDeliveries.WithLabelValues(kind, strconv.FormatBool(p.Redelivery)).Inc()
		default:
			GrantsAcknowledged.WithLabelValues(kind).Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func attackOutcome(p event.AttackResolvedPayloadV1) string {
	switch {
	case p.IsFumble:
		return OutcomeFumble
	case p.IsHit && p.IsCritical:
		return OutcomeCriticalHit
	case p.IsHit:
		return OutcomeHit
	default:
		return OutcomeMiss
	}
}

// PendingCounter reports queue depth per grant kind
type PendingCounter interface {
	PendingCounts() map[domain.GrantKind]int
}

// PendingGrantsJob refreshes the grants_pending gauge. It satisfies worker.Job.
type PendingGrantsJob struct {
	source PendingCounter
}

// NewPendingGrantsJob creates a job that samples source
func NewPendingGrantsJob(source PendingCounter) *PendingGrantsJob {
	return &PendingGrantsJob{source: source}
}

// Process samples the pending counts into the gauge
func (j *PendingGrantsJob) Process(_ context.Context) error {
	for kind, n := range j.source.PendingCounts() {
		GrantsPending.WithLabelValues(string(kind)).Set(float64(n))
	}
	return nil
}

// Name identifies the job in worker logs
func (j *PendingGrantsJob) Name() string { return "pending-grants-gauge" }
