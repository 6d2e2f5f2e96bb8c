package sse

import (
	"context"

	"github.com/osse101/StormSheet_Go/internal/event"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the combat event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.AttackResolved, s.handleAttackResolved)
	s.bus.Subscribe(event.CombinationCompleted, s.handleCombinationCompleted)

	logger.Info(LogMsgSubscriberReady,
		"types", []string{string(event.AttackResolved), string(event.CombinationCompleted)})
}

func (s *Subscriber) handleAttackResolved(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.AttackResolvedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeAttackResolved, payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", EventTypeAttackResolved,
		"character_id", payload.CharacterID,
		"is_hit", payload.IsHit)
	return nil
}

func (s *Subscriber) handleCombinationCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CombinationCompletedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeCombinationCompleted, payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"event_type", EventTypeCombinationCompleted,
		"attack_count", payload.AttackCount)
	return nil
}
