package event

import "time"

// EventSchemaVersion is stamped on every event built by the New*Event constructors
const EventSchemaVersion = "1.0"

const (
	// RetryQueueBufferSize bounds pending retries; overflow goes straight to the dead-letter file
	RetryQueueBufferSize = 1000

	DeadLetterFilePermissions = 0644
)

const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, dead-lettering event"
	LogMsgDeadLetterWriteFailed = "Failed to write dead-letter entry"
	LogMsgEventRetryExhausted   = "Event retries exhausted, dead-lettering event"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Event publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event dead-lettered"
)

// ErrMsgHandlersFailed prefixes the joined subscriber errors returned by MemoryBus.Publish
const ErrMsgHandlersFailed = "event handlers failed"

// CalculateRetryDelay doubles baseDelay for every attempt after the first
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
