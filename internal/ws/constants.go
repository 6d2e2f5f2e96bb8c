package ws

import "time"

// Connection settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// SendBufferSize is the number of outbound frames a session queues before deliveries fail
	SendBufferSize = 32
)

// Message types
const (
	MessageTypeConnected = "connected"
	MessageTypeAck       = "ack"
	MessageTypeAcked     = "acked"
	MessageTypeError     = "error"
)

// Log messages
const (
	LogMsgUpgradeFailed     = "websocket upgrade failed"
	LogMsgSessionOpened     = "websocket session opened"
	LogMsgSessionClosed     = "websocket session closed"
	LogMsgMalformedMessage  = "discarding malformed websocket message"
	LogMsgUnknownMessage    = "discarding unknown websocket message type"
	LogMsgWriteFailed       = "websocket write failed"
	LogMsgReplyDropped      = "websocket reply dropped, send buffer full"
	LogMsgUnexpectedClosure = "websocket closed unexpectedly"
)
