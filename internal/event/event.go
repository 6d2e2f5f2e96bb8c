package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Domain event types
const (
	AttackResolved       Type = Type(domain.EventTypeAttackResolved)
	CombinationCompleted Type = Type(domain.EventTypeCombinationCompleted)
	GrantIssued          Type = Type(domain.EventTypeGrantIssued)
	GrantDelivered       Type = Type(domain.EventTypeGrantDelivered)
	GrantAcknowledged    Type = Type(domain.EventTypeGrantAcknowledged)
)

// AttackResolvedPayloadV1 is the typed payload for a single resolved attack
type AttackResolvedPayloadV1 struct {
	CharacterID   string               `json:"character_id,omitempty"`
	AdvantageMode domain.AdvantageMode `json:"advantage_mode"`
	FinalRoll     int                  `json:"final_roll"`
	IsHit         bool                 `json:"is_hit"`
	IsCritical    bool                 `json:"is_critical"`
	IsFumble      bool                 `json:"is_fumble"`
	DamageDealt   int                  `json:"damage_dealt"`
	Timestamp     int64                `json:"timestamp"`
}

// CombinationCompletedPayloadV1 is the typed payload for a finished combination run
type CombinationCompletedPayloadV1 struct {
	AdvantageMode domain.AdvantageMode `json:"advantage_mode"`
	AttackCount   int                  `json:"attack_count"`
	HitCount      int                  `json:"hit_count"`
	MissCount     int                  `json:"miss_count"`
	TotalDamage   int                  `json:"total_damage"`
	Timestamp     int64                `json:"timestamp"`
}

// GrantPayloadV1 is the typed payload shared by grant lifecycle events
type GrantPayloadV1 struct {
	GrantID     string           `json:"grant_id"`
	CharacterID string           `json:"character_id"`
	Kind        domain.GrantKind `json:"kind"`
	ClientID    string           `json:"client_id,omitempty"`
	Redelivery  bool             `json:"redelivery,omitempty"`
	Timestamp   int64            `json:"timestamp"`
}

// NewAttackResolvedEvent creates an attack resolved event
func NewAttackResolvedEvent(characterID string, mode domain.AdvantageMode, result domain.AttackResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AttackResolved,
		Payload: AttackResolvedPayloadV1{
			CharacterID:   characterID,
			AdvantageMode: mode,
			FinalRoll:     result.AttackRoll.FinalRoll,
			IsHit:         result.Combat.IsHit,
			IsCritical:    result.AttackRoll.IsCritical,
			IsFumble:      result.AttackRoll.IsFumble,
			DamageDealt:   result.Combat.DamageDealt,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewCombinationCompletedEvent creates a combination completed event
func NewCombinationCompletedEvent(mode domain.AdvantageMode, summary domain.CombinationSummary) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CombinationCompleted,
		Payload: CombinationCompletedPayloadV1{
			AdvantageMode: mode,
			AttackCount:   summary.AttackCount,
			HitCount:      summary.Summary.HitCount,
			MissCount:     summary.Summary.MissCount,
			TotalDamage:   summary.Summary.TotalDamage,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewGrantEvent creates a grant lifecycle event of the given type
func NewGrantEvent(eventType Type, grant domain.Grant, clientID string, redelivery bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: GrantPayloadV1{
			GrantID:     grant.ID,
			CharacterID: grant.CharacterID,
			Kind:        grant.Kind,
			ClientID:    clientID,
			Redelivery:  redelivery,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"character_id": grant.CharacterID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s (%s): %w", ErrMsgHandlersFailed, event.Type, errors.Join(errs...))
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
