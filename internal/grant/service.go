package grant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/event"
	"github.com/osse101/StormSheet_Go/internal/logger"
	"github.com/osse101/StormSheet_Go/internal/repository"
)

// Service is the game-master and client facing surface of the delivery registry
type Service interface {
	Issue(ctx context.Context, characterID string, payload domain.GrantPayload) (*domain.Grant, error)
	Acknowledge(ctx context.Context, characterID string, kind domain.GrantKind, grantID string) (*domain.Grant, error)
	Pending(ctx context.Context, characterID string, kind domain.GrantKind) ([]domain.Grant, error)
	Confirmed(ctx context.Context, characterID string, kind domain.GrantKind) ([]domain.ConfirmedGrant, error)
	Connect(ctx context.Context, characterID string, client Client)
	Disconnect(ctx context.Context, characterID, clientID string)
	RedeliverStale(ctx context.Context) int
	PendingCounts() map[domain.GrantKind]int
}

// CharacterChecker reports whether a character exists
type CharacterChecker interface {
	Exists(ctx context.Context, characterID string) (bool, error)
}

type service struct {
	registry       *Registry
	confirmed      repository.ConfirmedGrant
	characters     CharacterChecker
	publisher      *event.ResilientPublisher
	redeliverAfter time.Duration
	now            func() time.Time
}

// NewService creates a grant service around registry. characters and publisher may be nil.
func NewService(
	registry *Registry,
	confirmed repository.ConfirmedGrant,
	characters CharacterChecker,
	publisher *event.ResilientPublisher,
	redeliverAfter time.Duration,
) Service {
	if redeliverAfter <= 0 {
		redeliverAfter = DefaultRedeliveryAfter
	}
	return &service{
		registry:       registry,
		confirmed:      confirmed,
		characters:     characters,
		publisher:      publisher,
		redeliverAfter: redeliverAfter,
		now:            time.Now,
	}
}

// DeliveryPublisher returns a DeliveryObserver that publishes grant.delivered events
func DeliveryPublisher(publisher *event.ResilientPublisher) DeliveryObserver {
	return func(d Delivery) {
		logger.Debug(LogMsgGrantDelivered,
			"character_id", d.Grant.CharacterID,
			"kind", d.Grant.Kind,
			"grant_id", d.Grant.ID,
			"client_id", d.ClientID,
			"redelivery", d.Redelivery)
		if publisher != nil {
			publisher.PublishWithRetry(context.Background(), event.NewGrantEvent(event.GrantDelivered, d.Grant, d.ClientID, d.Redelivery))
		}
	}
}

func (s *service) Issue(ctx context.Context, characterID string, payload domain.GrantPayload) (*domain.Grant, error) {
	if strings.TrimSpace(characterID) == "" {
		return nil, fmt.Errorf("%w: characterId", domain.ErrMissingField)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: payload is required", domain.ErrInvalidGrant)
	}
	if !payload.Kind().Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGrantKind, payload.Kind())
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if s.characters != nil {
		ok, err := s.characters.Exists(ctx, characterID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
		}
	}

	g := domain.Grant{
		ID:          uuid.NewString(),
		CharacterID: characterID,
		Kind:        payload.Kind(),
		Payload:     payload,
		IssuedAt:    s.now().UTC(),
	}
	s.publish(ctx, event.NewGrantEvent(event.GrantIssued, g, "", false))
	position := s.registry.Enqueue(g)

	logger.FromContext(ctx).Info(LogMsgGrantIssued,
		"character_id", characterID,
		"kind", g.Kind,
		"grant_id", g.ID,
		"queue_position", position)
	return &g, nil
}

func (s *service) Acknowledge(ctx context.Context, characterID string, kind domain.GrantKind, grantID string) (*domain.Grant, error) {
	log := logger.FromContext(ctx)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGrantKind, kind)
	}

	var confirm ConfirmFunc
	if kind.RetainsConfirmation() {
		confirm = func(g domain.Grant) error { return s.storeConfirmation(ctx, g) }
	}

	g, err := s.registry.Acknowledge(characterID, kind, grantID, confirm)
	if err != nil {
		log.Info(LogMsgGrantAckRejected, "character_id", characterID, "kind", kind, "grant_id", grantID, "error", err)
		return nil, err
	}

	log.Info(LogMsgGrantAcknowledged, "character_id", characterID, "kind", kind, "grant_id", g.ID)
	s.publish(ctx, event.NewGrantEvent(event.GrantAcknowledged, g, "", false))
	return &g, nil
}

func (s *service) storeConfirmation(ctx context.Context, g domain.Grant) error {
	if s.confirmed == nil {
		return nil
	}
	raw, err := json.Marshal(g.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode grant payload: %w", err)
	}
	rec := domain.ConfirmedGrant{
		GrantID:     g.ID,
		CharacterID: g.CharacterID,
		Kind:        g.Kind,
		Payload:     raw,
		IssuedAt:    g.IssuedAt,
		ConfirmedAt: s.now().UTC(),
	}
	if err := s.confirmed.SaveConfirmedGrant(ctx, rec); err != nil {
		logger.FromContext(ctx).Error(LogMsgConfirmFailed, "character_id", g.CharacterID, "grant_id", g.ID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	return nil
}

func (s *service) Pending(_ context.Context, characterID string, kind domain.GrantKind) ([]domain.Grant, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGrantKind, kind)
	}
	return s.registry.Pending(characterID, kind), nil
}

func (s *service) Confirmed(ctx context.Context, characterID string, kind domain.GrantKind) ([]domain.ConfirmedGrant, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGrantKind, kind)
	}
	if s.confirmed == nil {
		return []domain.ConfirmedGrant{}, nil
	}
	return s.confirmed.ListConfirmedGrants(ctx, characterID, kind)
}

func (s *service) Connect(ctx context.Context, characterID string, client Client) {
	logger.FromContext(ctx).Info(LogMsgClientConnected, "character_id", characterID, "client_id", client.ID())
	s.registry.Connect(characterID, client)
}

func (s *service) Disconnect(ctx context.Context, characterID, clientID string) {
	if s.registry.Disconnect(characterID, clientID) {
		logger.FromContext(ctx).Info(LogMsgClientDisconnected, "character_id", characterID, "client_id", clientID)
	}
}

// RedeliverStale re-sends heads that have waited longer than the redelivery threshold
func (s *service) RedeliverStale(ctx context.Context) int {
	n := s.registry.Redeliver(s.redeliverAfter)
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgRedeliverySweep, "redelivered", n)
	}
	return n
}

func (s *service) PendingCounts() map[domain.GrantKind]int {
	return s.registry.PendingCounts()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}
