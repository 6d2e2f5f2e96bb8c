package grant

import "time"

// Redelivery defaults
const (
	DefaultRedeliveryInterval = 30 * time.Second
	DefaultRedeliveryAfter    = 60 * time.Second
)

// Log messages
const (
	LogMsgGrantIssued         = "Grant issued"
	LogMsgGrantDelivered      = "Grant delivered"
	LogMsgGrantDeliveryFailed = "Grant delivery failed, keeping it pending"
	LogMsgGrantAcknowledged   = "Grant acknowledged"
	LogMsgGrantAckRejected    = "Grant acknowledgement rejected"
	LogMsgClientConnected     = "Grant client connected"
	LogMsgClientDisconnected  = "Grant client disconnected"
	LogMsgStaleDisconnect     = "Ignoring disconnect for replaced client"
	LogMsgRedeliverySweep     = "Grant redelivery sweep"
	LogMsgConfirmFailed       = "Failed to store confirmed grant"
)
