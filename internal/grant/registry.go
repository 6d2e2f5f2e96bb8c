package grant

import (
	"fmt"
	"sync"
	"time"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// Client is a connected push channel for one character.
// Deliver must not block on the remote peer.
type Client interface {
	ID() string
	Deliver(grant domain.Grant) error
}

// Delivery records one push of a grant to a client
type Delivery struct {
	Grant      domain.Grant
	ClientID   string
	Redelivery bool
}

// DeliveryObserver is notified after each successful delivery, outside the registry lock
type DeliveryObserver func(Delivery)

type queueKey struct {
	characterID string
	kind        domain.GrantKind
}

type pendingEntry struct {
	grant       domain.Grant
	deliveredAt time.Time
	deliveries  int
	// confirming is set while an acknowledgement runs its ConfirmFunc
	confirming bool
}

// Registry owns the per-character, per-kind pending grant queues and the
// connected client for each character. Only the head of a queue is ever in
// flight; it leaves the queue only when acknowledged.
type Registry struct {
	mu       sync.Mutex
	queues   map[queueKey][]*pendingEntry
	clients  map[string]Client
	now      func() time.Time
	observer DeliveryObserver
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithClock overrides the time source
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// WithDeliveryObserver sets the delivery observer
func WithDeliveryObserver(obs DeliveryObserver) RegistryOption {
	return func(r *Registry) { r.observer = obs }
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		queues:  make(map[queueKey][]*pendingEntry),
		clients: make(map[string]Client),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enqueue appends a grant to its character's queue for that kind and returns
// the queue length. If a client is connected and the head has not been sent
// yet, the head is delivered. A new grant never jumps the queue.
func (r *Registry) Enqueue(g domain.Grant) int {
	r.mu.Lock()
	key := queueKey{characterID: g.CharacterID, kind: g.Kind}
	r.queues[key] = append(r.queues[key], &pendingEntry{grant: g})
	length := len(r.queues[key])

	var delivered []Delivery
	if client, ok := r.clients[g.CharacterID]; ok {
		if head := r.queues[key][0]; head.deliveredAt.IsZero() {
			delivered = r.deliverLocked(client, head, delivered)
		}
	}
	r.mu.Unlock()

	r.notify(delivered)
	return length
}

// Connect records client as the character's connection, replacing any previous
// one, and delivers the head of every non-empty queue. Heads that were already
// delivered are sent again unchanged. A head whose acknowledgement is being
// confirmed is skipped.
func (r *Registry) Connect(characterID string, client Client) {
	r.mu.Lock()
	r.clients[characterID] = client

	var delivered []Delivery
	for _, kind := range domain.AllGrantKinds() {
		queue := r.queues[queueKey{characterID: characterID, kind: kind}]
		if len(queue) == 0 || queue[0].confirming {
			continue
		}
		delivered = r.deliverLocked(client, queue[0], delivered)
	}
	r.mu.Unlock()

	r.notify(delivered)
}

// Disconnect clears the character's connection. A non-empty clientID must match
// the current connection, so a late disconnect from a replaced connection is
// ignored. Queues are untouched. Reports whether a connection was removed.
func (r *Registry) Disconnect(characterID, clientID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.clients[characterID]
	if !ok {
		return false
	}
	if clientID != "" && current.ID() != clientID {
		logger.Debug(LogMsgStaleDisconnect, "character_id", characterID, "client_id", clientID, "current_client_id", current.ID())
		return false
	}
	delete(r.clients, characterID)
	return true
}

// ConfirmFunc runs with the head grant before it is removed. It runs without
// the registry lock held, so it may block on storage and may call back into the
// registry. Returning an error keeps the grant at the head.
type ConfirmFunc func(domain.Grant) error

// Acknowledge removes the head of the character's queue for kind and delivers
// the next grant if a client is connected. A non-empty grantID must match the
// head. confirm, when non-nil, runs before removal; while it runs the head is
// marked as confirming and a second acknowledgement of it is rejected with
// ErrGrantMismatch.
func (r *Registry) Acknowledge(characterID string, kind domain.GrantKind, grantID string, confirm ConfirmFunc) (domain.Grant, error) {
	key := queueKey{characterID: characterID, kind: kind}

	r.mu.Lock()
	queue := r.queues[key]
	if len(queue) == 0 {
		r.mu.Unlock()
		return domain.Grant{}, fmt.Errorf("%w: %s has no pending %s grant", domain.ErrNoPendingGrant, characterID, kind)
	}

	head := queue[0]
	if grantID != "" && head.grant.ID != grantID {
		r.mu.Unlock()
		return domain.Grant{}, fmt.Errorf("%w: head is %s, got %s", domain.ErrGrantMismatch, head.grant.ID, grantID)
	}
	if head.confirming {
		r.mu.Unlock()
		return domain.Grant{}, fmt.Errorf("%w: %s is already being acknowledged", domain.ErrGrantMismatch, head.grant.ID)
	}

	if confirm != nil {
		head.confirming = true
		r.mu.Unlock()

		err := confirm(head.grant)

		r.mu.Lock()
		head.confirming = false
		if err != nil {
			r.mu.Unlock()
			return domain.Grant{}, err
		}
		queue = r.queues[key]
		if len(queue) == 0 || queue[0] != head {
			r.mu.Unlock()
			return domain.Grant{}, fmt.Errorf("%w: %s left the queue during confirmation", domain.ErrGrantMismatch, head.grant.ID)
		}
	}

	queue[0] = nil
	queue = queue[1:]
	if len(queue) == 0 {
		delete(r.queues, key)
	} else {
		r.queues[key] = queue
	}

	var delivered []Delivery
	if client, ok := r.clients[characterID]; ok && len(queue) > 0 {
		delivered = r.deliverLocked(client, queue[0], delivered)
	}
	r.mu.Unlock()

	r.notify(delivered)
	return head.grant, nil
}

// Redeliver re-sends every head that was delivered at least olderThan ago, or
// never delivered, to its character's connected client. It returns the number
// of grants sent.
func (r *Registry) Redeliver(olderThan time.Duration) int {
	r.mu.Lock()
	now := r.now()

	var delivered []Delivery
	for key, queue := range r.queues {
		client, ok := r.clients[key.characterID]
		if !ok || len(queue) == 0 {
			continue
		}
		head := queue[0]
		if head.confirming {
			continue
		}
		if !head.deliveredAt.IsZero() && now.Sub(head.deliveredAt) < olderThan {
			continue
		}
		delivered = r.deliverLocked(client, head, delivered)
	}
	r.mu.Unlock()

	r.notify(delivered)
	return len(delivered)
}

// Pending returns a copy of the character's queue for kind, head first
func (r *Registry) Pending(characterID string, kind domain.GrantKind) []domain.Grant {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.queues[queueKey{characterID: characterID, kind: kind}]
	out := make([]domain.Grant, len(queue))
	for i, e := range queue {
		out[i] = e.grant
	}
	return out
}

// PendingCounts returns the number of pending grants per kind across all characters
func (r *Registry) PendingCounts() map[domain.GrantKind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[domain.GrantKind]int, len(domain.AllGrantKinds()))
	for _, kind := range domain.AllGrantKinds() {
		counts[kind] = 0
	}
	for key, queue := range r.queues {
		counts[key.kind] += len(queue)
	}
	return counts
}

// IsConnected reports whether a client is connected for the character
func (r *Registry) IsConnected(characterID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.clients[characterID]
	return ok
}

// deliverLocked pushes one entry. A failed push leaves the entry undelivered.
func (r *Registry) deliverLocked(client Client, entry *pendingEntry, delivered []Delivery) []Delivery {
	if err := client.Deliver(entry.grant); err != nil {
		logger.Warn(LogMsgGrantDeliveryFailed,
			"character_id", entry.grant.CharacterID,
			"kind", entry.grant.Kind,
			"grant_id", entry.grant.ID,
			"client_id", client.ID(),
			"error", err)
		return delivered
	}

	redelivery := entry.deliveries > 0
	entry.deliveries++
	entry.deliveredAt = r.now()
	return append(delivered, Delivery{Grant: entry.grant, ClientID: client.ID(), Redelivery: redelivery})
}

func (r *Registry) notify(delivered []Delivery) {
	if r.observer == nil {
		return
	}
	for _, d := range delivered {
		r.observer(d)
	}
}
