package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/grant"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// GrantService is the part of grant.Service a websocket session drives
type GrantService interface {
	Connect(ctx context.Context, characterID string, client grant.Client)
	Disconnect(ctx context.Context, characterID, clientID string)
	Acknowledge(ctx context.Context, characterID string, kind domain.GrantKind, grantID string) (*domain.Grant, error)
}

// Handler upgrades /ws requests into grant sessions
type Handler struct {
	grants   GrantService
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler backed by grants
func NewHandler(grants GrantService) *Handler {
	return &Handler{
		grants: grants,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle serves GET /ws?character_id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	characterID := r.URL.Query().Get("character_id")
	if characterID == "" {
		http.Error(w, "missing character_id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	log := logger.FromContext(ctx)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn(LogMsgUpgradeFailed, "character_id", characterID, "error", err)
		return
	}

	s := newSession(characterID, conn)
	go s.writePump()

	log.Info(LogMsgSessionOpened, "character_id", characterID, "session_id", s.id)
	defer func() {
		h.grants.Disconnect(ctx, characterID, s.id)
		s.close()
		log.Info(LogMsgSessionClosed, "character_id", characterID, "session_id", s.id)
	}()

	if err := s.enqueue(serverMessage{Type: MessageTypeConnected, CharacterID: characterID}); err != nil {
		return
	}
	h.grants.Connect(ctx, characterID, s)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info(LogMsgUnexpectedClosure, "character_id", characterID, "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Warn(LogMsgMalformedMessage, "character_id", characterID, "error", err)
			h.reply(s, serverMessage{Type: MessageTypeError, Error: domain.ErrMsgMalformedRequest})
			continue
		}

		switch msg.Type {
		case MessageTypeAck:
			h.handleAck(ctx, s, msg)
		default:
			log.Debug(LogMsgUnknownMessage, "character_id", characterID, "type", msg.Type)
			h.reply(s, serverMessage{Type: MessageTypeError, Error: "unknown message type"})
		}
	}
}

func (h *Handler) handleAck(ctx context.Context, s *session, msg clientMessage) {
	kind, err := domain.ParseGrantKind(msg.Kind)
	if err != nil {
		h.reply(s, serverMessage{Type: MessageTypeError, GrantID: msg.GrantID, Error: domain.ErrMsgUnknownGrantKind})
		return
	}

	g, err := h.grants.Acknowledge(ctx, s.characterID, kind, msg.GrantID)
	if err != nil {
		h.reply(s, serverMessage{Type: MessageTypeError, Kind: kind, GrantID: msg.GrantID, Error: ackErrorMessage(err)})
		return
	}
	h.reply(s, serverMessage{Type: MessageTypeAcked, CharacterID: s.characterID, Kind: kind, GrantID: g.ID})
}

func (h *Handler) reply(s *session, msg serverMessage) {
	if err := s.enqueue(msg); errors.Is(err, ErrSendBufferFull) {
		logger.Warn(LogMsgReplyDropped, "character_id", s.characterID, "type", msg.Type)
	}
}

func ackErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoPendingGrant):
		return domain.ErrMsgNoPendingGrant
	case errors.Is(err, domain.ErrGrantMismatch):
		return domain.ErrMsgGrantMismatch
	case errors.Is(err, domain.ErrUnknownGrantKind):
		return domain.ErrMsgUnknownGrantKind
	default:
		return domain.ErrMsgDatabaseError
	}
}
