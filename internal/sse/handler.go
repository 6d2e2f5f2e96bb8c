package sse

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/StormSheet_Go/internal/grant"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// GrantConnector is told when a character's stream opens and closes
type GrantConnector interface {
	Connect(ctx context.Context, characterID string, client grant.Client)
	Disconnect(ctx context.Context, characterID, clientID string)
}

// Handler returns an HTTP handler for broadcast-only SSE connections.
// ?types=a,b limits the stream to those event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var eventTypes []string
		if filterParam := r.URL.Query().Get("types"); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}
		serve(w, r, hub, "", eventTypes, nil)
	}
}

// CharacterHandler returns an HTTP handler for /characters/{id}/events.
// The stream identifies the character, so pending grants are pushed as soon as it opens.
func CharacterHandler(hub *Hub, grants GrantConnector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID := chi.URLParam(r, "id")
		if characterID == "" {
			http.Error(w, "character id is required", http.StatusBadRequest)
			return
		}
		// Grant events only; broadcast traffic uses the shared stream
		serve(w, r, hub, characterID, []string{EventTypeKeepalive}, grants)
	}
}

func serve(w http.ResponseWriter, r *http.Request, hub *Hub, characterID string, eventTypes []string, grants GrantConnector) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	ctx := r.Context()
	log := logger.FromContext(ctx)

	client := hub.Register(characterID, eventTypes)
	log.Info(LogMsgClientConnected,
		"client_id", client.ID(),
		"character_id", characterID,
		"filters", eventTypes)

	defer func() {
		if grants != nil {
			grants.Disconnect(ctx, characterID, client.ID())
		}
		hub.Unregister(client.ID())
		log.Info(LogMsgClientDisconnected, "client_id", client.ID(), "character_id", characterID)
	}()

	connectEvent := Event{
		ID:        client.ID(),
		Type:      EventTypeConnected,
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"client_id":    client.ID(),
			"character_id": characterID,
		},
	}
	if !write(w, flusher, connectEvent) {
		return
	}

	if grants != nil {
		grants.Connect(ctx, characterID, client)
	}

	ticker := time.NewTicker(KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-client.EventChannel:
			if !ok {
				return
			}
			if !write(w, flusher, event) {
				return
			}

		case <-ticker.C:
			if !write(w, flusher, Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
				return
			}
		}
	}
}

func write(w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		logger.Error(LogMsgWriteError, "event_type", event.Type, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		logger.Warn(LogMsgWriteError, "event_type", event.Type, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
