package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/grant"
)

type fakeConnector struct {
	mu           sync.Mutex
	pending      []domain.Grant
	connected    []string
	disconnected []string
}

func (f *fakeConnector) Connect(_ context.Context, characterID string, client grant.Client) {
	f.mu.Lock()
	f.connected = append(f.connected, characterID)
	pending := append([]domain.Grant(nil), f.pending...)
	f.mu.Unlock()

	for _, g := range pending {
		_ = client.Deliver(g)
	}
}

func (f *fakeConnector) Disconnect(_ context.Context, characterID, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnected = append(f.disconnected, characterID)
}

func (f *fakeConnector) disconnectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.disconnected)
}

// readEvents collects "event:" names from the stream until n have been seen
func readEvents(t *testing.T, scanner *bufio.Scanner, n int) []string {
	t.Helper()
	var names []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		for scanner.Scan() {
			if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
				names = append(names, name)
				if len(names) == n {
					return
				}
			}
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out reading events, got %v", names)
	}
	return names
}

func TestCharacterHandler_PushesPendingGrants(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	grants := &fakeConnector{pending: []domain.Grant{
		{ID: "g1", CharacterID: "char-1", Kind: domain.GrantKindLevelUp, Payload: domain.LevelUpGrant{NewLevel: 2}},
		{ID: "g2", CharacterID: "char-1", Kind: domain.GrantKindSpren, Payload: domain.SprenGrant{SprenType: "honorspren", Name: "Syl"}},
	}}

	r := chi.NewRouter()
	r.Get("/characters/{id}/events", CharacterHandler(hub, grants))
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/characters/char-1/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	scanner := bufio.NewScanner(resp.Body)
	assert.Equal(t, []string{EventTypeConnected, "level-up-granted", "spren-granted"}, readEvents(t, scanner, 3))

	cancel()
	require.Eventually(t, func() bool { return grants.disconnectCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"char-1"}, grants.connected)
}

func TestHandler_StreamsBroadcasts(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "?types=" + EventTypeAttackResolved)
	require.NoError(t, err)
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	require.Equal(t, []string{EventTypeConnected}, readEvents(t, scanner, 1))
	waitForClients(t, hub, 1)

	hub.Broadcast(EventTypeCombinationCompleted, nil)
	hub.Broadcast(EventTypeAttackResolved, nil)
	assert.Equal(t, []string{EventTypeAttackResolved}, readEvents(t, scanner, 1))
}
