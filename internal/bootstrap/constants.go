package bootstrap

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Storage messages
const (
	LogMsgStorageSelected     = "Storage backend selected"
	LogMsgCharacterCacheOn    = "Character cache enabled"
	LogMsgCharacterCacheOff   = "Character cache disabled"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateDB     = "failed to migrate database"
	LogMsgDiceSeeded          = "Dice roller seeded, rolls are reproducible"
	LogMsgDiceSecure          = "Dice roller using crypto/rand"
	LogMsgBackgroundJobsReady = "Background jobs scheduled"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)

// Job names used in scheduler logs
const (
	JobNameGrantRedelivery = "grant-redelivery"
	JobNamePendingGauge    = "pending-grants-gauge"
)
