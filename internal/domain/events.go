package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "grant.issued")
const (
	// EventTypeAttackResolved is published after a single attack is executed
	EventTypeAttackResolved = "combat.attack_resolved"

	// EventTypeCombinationCompleted is published after a combination run finishes
	EventTypeCombinationCompleted = "combat.combination_completed"

	// EventTypeGrantIssued is published when a game master issues a grant
	EventTypeGrantIssued = "grant.issued"

	// EventTypeGrantDelivered is published each time a grant is pushed to a client
	EventTypeGrantDelivered = "grant.delivered"

	// EventTypeGrantAcknowledged is published when a client acknowledges the head grant
	EventTypeGrantAcknowledged = "grant.acknowledged"
)
