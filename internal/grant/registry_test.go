package grant

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// fakeClient records deliveries and can be told to fail
type fakeClient struct {
	id   string
	mu   sync.Mutex
	got  []domain.Grant
	fail bool
}

func newFakeClient(id string) *fakeClient { return &fakeClient{id: id} }

func (c *fakeClient) ID() string { return c.id }

func (c *fakeClient) Deliver(g domain.Grant) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("send buffer full")
	}
	c.got = append(c.got, g)
	return nil
}

func (c *fakeClient) delivered() []domain.Grant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Grant(nil), c.got...)
}

func (c *fakeClient) setFail(fail bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = fail
}

func levelUp(id, characterID string, level int) domain.Grant {
	return domain.Grant{
		ID:          id,
		CharacterID: characterID,
		Kind:        domain.GrantKindLevelUp,
		Payload:     domain.LevelUpGrant{NewLevel: level},
	}
}

func item(id, characterID string) domain.Grant {
	return domain.Grant{
		ID:          id,
		CharacterID: characterID,
		Kind:        domain.GrantKindItem,
		Payload:     domain.ItemGrant{ItemID: "sphere", Quantity: 1},
	}
}

func ids(grants []domain.Grant) []string {
	out := make([]string, len(grants))
	for i, g := range grants {
		out[i] = g.ID
	}
	return out
}

func TestRegistry_DeliversOnConnectThenAck(t *testing.T) {
	r := NewRegistry()

	// Enqueue with nobody connected: pending, nothing delivered
	assert.Equal(t, 1, r.Enqueue(levelUp("g1", "x", 2)))
	assert.Len(t, r.Pending("x", domain.GrantKindLevelUp), 1)

	client := newFakeClient("c1")
	r.Connect("x", client)
	assert.Equal(t, []string{"g1"}, ids(client.delivered()))

	_, err := r.Acknowledge("x", domain.GrantKindLevelUp, "", nil)
	require.NoError(t, err)
	assert.Empty(t, r.Pending("x", domain.GrantKindLevelUp))

	// Connected client receives a new grant immediately
	r.Enqueue(levelUp("g2", "x", 3))
	assert.Equal(t, []string{"g1", "g2"}, ids(client.delivered()))
}

func TestRegistry_DeliversHeadOnlyUntilAck(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("g1", "x", 2))
	r.Enqueue(levelUp("g2", "x", 3))

	client := newFakeClient("c1")
	r.Connect("x", client)
	assert.Equal(t, []string{"g1"}, ids(client.delivered()), "only the head is in flight")

	acked, err := r.Acknowledge("x", domain.GrantKindLevelUp, "g1", nil)
	require.NoError(t, err)
	assert.Equal(t, "g1", acked.ID)
	assert.Equal(t, []string{"g1", "g2"}, ids(client.delivered()))

	_, err = r.Acknowledge("x", domain.GrantKindLevelUp, "g2", nil)
	require.NoError(t, err)
	assert.Len(t, client.delivered(), 2)
}

func TestRegistry_EnqueueWhileHeadInFlight(t *testing.T) {
	r := NewRegistry()
	client := newFakeClient("c1")
	r.Connect("x", client)

	r.Enqueue(levelUp("g1", "x", 2))
	r.Enqueue(levelUp("g2", "x", 3))

	assert.Equal(t, []string{"g1"}, ids(client.delivered()), "the second grant waits for the first ack")
	assert.Equal(t, []string{"g1", "g2"}, ids(r.Pending("x", domain.GrantKindLevelUp)))
}

func TestRegistry_ReconnectRedeliversSameHead(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("g1", "x", 2))
	r.Enqueue(levelUp("g2", "x", 3))

	first := newFakeClient("c1")
	r.Connect("x", first)
	r.Disconnect("x", "c1")

	second := newFakeClient("c2")
	r.Connect("x", second)

	assert.Equal(t, []string{"g1"}, ids(first.delivered()))
	assert.Equal(t, []string{"g1"}, ids(second.delivered()), "unacknowledged head is resent, not advanced")
}

func TestRegistry_AcknowledgeErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Acknowledge("x", domain.GrantKindSpren, "", nil)
	assert.ErrorIs(t, err, domain.ErrNoPendingGrant)

	r.Enqueue(levelUp("g1", "x", 2))
	r.Enqueue(levelUp("g2", "x", 3))

	_, err = r.Acknowledge("x", domain.GrantKindLevelUp, "g2", nil)
	assert.ErrorIs(t, err, domain.ErrGrantMismatch)
	assert.Len(t, r.Pending("x", domain.GrantKindLevelUp), 2, "mismatched ack leaves the queue alone")
}

func TestRegistry_ConfirmFailureKeepsHead(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("g1", "x", 2))

	_, err := r.Acknowledge("x", domain.GrantKindLevelUp, "g1", func(domain.Grant) error {
		return errors.New("db down")
	})
	require.Error(t, err)
	assert.Len(t, r.Pending("x", domain.GrantKindLevelUp), 1)

	var confirmed string
	_, err = r.Acknowledge("x", domain.GrantKindLevelUp, "g1", func(g domain.Grant) error {
		confirmed = g.ID
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "g1", confirmed)
}

func TestRegistry_ConfirmRunsWithoutLock(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("g1", "x", 2))

	started := make(chan struct{})
	release := make(chan struct{})
	type ackResult struct {
		grant domain.Grant
		err   error
	}
	done := make(chan ackResult, 1)
	go func() {
		g, err := r.Acknowledge("x", domain.GrantKindLevelUp, "g1", func(domain.Grant) error {
			close(started)
			<-release
			return nil
		})
		done <- ackResult{g, err}
	}()
	<-started

	// the registry stays usable while the confirmation is in flight
	assert.Equal(t, 2, r.Enqueue(levelUp("g2", "x", 3)))
	assert.Equal(t, []string{"g1", "g2"}, ids(r.Pending("x", domain.GrantKindLevelUp)))

	_, err := r.Acknowledge("x", domain.GrantKindLevelUp, "", nil)
	assert.ErrorIs(t, err, domain.ErrGrantMismatch, "a head being confirmed cannot be acknowledged twice")

	client := newFakeClient("c1")
	r.Connect("x", client)
	assert.Empty(t, client.delivered(), "a head being confirmed is not pushed again")
	assert.Zero(t, r.Redeliver(0))

	close(release)
	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, "g1", res.grant.ID)
	case <-time.After(time.Second):
		t.Fatal("acknowledge did not return")
	}

	assert.Equal(t, []string{"g2"}, ids(r.Pending("x", domain.GrantKindLevelUp)))
	assert.Equal(t, []string{"g2"}, ids(client.delivered()))
}

func TestRegistry_ConfirmMayCallRegistry(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("g1", "x", 2))

	_, err := r.Acknowledge("x", domain.GrantKindLevelUp, "g1", func(g domain.Grant) error {
		assert.Len(t, r.Pending(g.CharacterID, g.Kind), 1)
		r.Enqueue(item("itm", g.CharacterID))
		return nil
	})
	require.NoError(t, err)

	assert.Empty(t, r.Pending("x", domain.GrantKindLevelUp))
	assert.Len(t, r.Pending("x", domain.GrantKindItem), 1)
}

func TestRegistry_KindsAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("lvl", "x", 2))
	r.Enqueue(item("itm", "x"))

	client := newFakeClient("c1")
	r.Connect("x", client)
	assert.ElementsMatch(t, []string{"lvl", "itm"}, ids(client.delivered()), "each kind has its own head")

	_, err := r.Acknowledge("x", domain.GrantKindItem, "itm", nil)
	require.NoError(t, err)
	assert.Len(t, r.Pending("x", domain.GrantKindLevelUp), 1)
}

func TestRegistry_CharactersAreIndependent(t *testing.T) {
	r := NewRegistry()
	cx := newFakeClient("cx")
	r.Connect("x", cx)

	r.Enqueue(levelUp("for-y", "y", 2))

	assert.Empty(t, cx.delivered())
	assert.False(t, r.IsConnected("y"))
	assert.True(t, r.IsConnected("x"))
}

func TestRegistry_StaleDisconnectIgnored(t *testing.T) {
	r := NewRegistry()
	r.Connect("x", newFakeClient("old"))
	r.Connect("x", newFakeClient("new"))

	assert.False(t, r.Disconnect("x", "old"))
	assert.True(t, r.IsConnected("x"))

	assert.True(t, r.Disconnect("x", "new"))
	assert.False(t, r.IsConnected("x"))
	assert.False(t, r.Disconnect("x", ""))
}

func TestRegistry_DisconnectKeepsQueue(t *testing.T) {
	r := NewRegistry()
	client := newFakeClient("c1")
	r.Connect("x", client)
	r.Enqueue(levelUp("g1", "x", 2))

	r.Disconnect("x", "")
	r.Enqueue(levelUp("g2", "x", 3))

	assert.Len(t, client.delivered(), 1)
	assert.Equal(t, []string{"g1", "g2"}, ids(r.Pending("x", domain.GrantKindLevelUp)))
}

func TestRegistry_FailedDeliveryStaysPending(t *testing.T) {
	r := NewRegistry()
	client := newFakeClient("c1")
	client.setFail(true)
	r.Connect("x", client)

	r.Enqueue(levelUp("g1", "x", 2))
	assert.Empty(t, client.delivered())

	client.setFail(false)
	r.Enqueue(levelUp("g2", "x", 3))
	assert.Equal(t, []string{"g1"}, ids(client.delivered()), "undelivered head is retried before anything else")
}

func TestRegistry_Redeliver(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var deliveries []Delivery
	r := NewRegistry(
		WithClock(func() time.Time { return now }),
		WithDeliveryObserver(func(d Delivery) { deliveries = append(deliveries, d) }),
	)

	client := newFakeClient("c1")
	r.Connect("x", client)
	r.Enqueue(levelUp("g1", "x", 2))
	r.Enqueue(levelUp("orphan", "nobody-connected", 2))

	now = now.Add(30 * time.Second)
	assert.Equal(t, 0, r.Redeliver(time.Minute), "not stale yet")

	now = now.Add(31 * time.Second)
	assert.Equal(t, 1, r.Redeliver(time.Minute))
	assert.Equal(t, []string{"g1", "g1"}, ids(client.delivered()))

	require.Len(t, deliveries, 2)
	assert.False(t, deliveries[0].Redelivery)
	assert.True(t, deliveries[1].Redelivery)
	assert.Equal(t, "c1", deliveries[1].ClientID)
}

func TestRegistry_PendingCounts(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("a", "x", 2))
	r.Enqueue(levelUp("b", "y", 2))
	r.Enqueue(item("c", "x"))

	counts := r.PendingCounts()
	assert.Equal(t, 2, counts[domain.GrantKindLevelUp])
	assert.Equal(t, 1, counts[domain.GrantKindItem])
	assert.Equal(t, 0, counts[domain.GrantKindSpren])
	assert.Len(t, counts, 4)
}

func TestRegistry_PendingIsACopy(t *testing.T) {
	r := NewRegistry()
	r.Enqueue(levelUp("a", "x", 2))

	p := r.Pending("x", domain.GrantKindLevelUp)
	p[0].ID = "mutated"

	assert.Equal(t, "a", r.Pending("x", domain.GrantKindLevelUp)[0].ID)
}

func TestRegistry_ConcurrentFIFO(t *testing.T) {
	r := NewRegistry()
	client := newFakeClient("c1")
	r.Connect("x", client)

	const n = 50
	for i := 0; i < n; i++ {
		r.Enqueue(levelUp(fmt.Sprintf("g%02d", i), "x", i+1))
	}

	// Acks from several goroutines still drain strictly in order
	var wg sync.WaitGroup
	var mu sync.Mutex
	var acked []string
	for w := 0; w < 5; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				g, err := r.Acknowledge("x", domain.GrantKindLevelUp, "", nil)
				if err != nil {
					return
				}
				mu.Lock()
				acked = append(acked, g.ID)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, acked, n)
	assert.ElementsMatch(t, ids(client.delivered()), acked)

	delivered := ids(client.delivered())
	for i := 1; i < len(delivered); i++ {
		assert.Less(t, delivered[i-1], delivered[i], "deliveries stay in enqueue order")
	}
}
