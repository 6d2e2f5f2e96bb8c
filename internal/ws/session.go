package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// Delivery errors
var (
	ErrSessionClosed  = errors.New("websocket session closed")
	ErrSendBufferFull = errors.New("websocket send buffer full")
)

// session is one websocket connection bound to a character. Only writePump writes to conn.
type session struct {
	id          string
	characterID string
	conn        *websocket.Conn
	send        chan []byte
	done        chan struct{}
	closeOnce   sync.Once
}

func newSession(characterID string, conn *websocket.Conn) *session {
	return &session{
		id:          uuid.New().String(),
		characterID: characterID,
		conn:        conn,
		send:        make(chan []byte, SendBufferSize),
		done:        make(chan struct{}),
	}
}

// ID implements grant.Client
func (s *session) ID() string { return s.id }

// Deliver implements grant.Client
func (s *session) Deliver(g domain.Grant) error {
	return s.enqueue(serverMessage{
		Type:        g.Kind.EventName(),
		CharacterID: g.CharacterID,
		Kind:        g.Kind,
		GrantID:     g.ID,
		Grant:       &g,
	})
}

func (s *session) enqueue(msg serverMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}

	select {
	case s.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// writePump serialises all writes and keeps the connection alive with pings
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case data := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Warn(LogMsgWriteFailed, "character_id", s.characterID, "session_id", s.id, "error", err)
				s.close()
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.close()
				return
			}

		case <-s.done:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
