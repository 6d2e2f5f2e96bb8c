package combat

// Default limits
const (
	// DefaultMaxAttackCount bounds a single combination request
	DefaultMaxAttackCount = 100
)

// Log messages
const (
	LogMsgAttackRejected       = "Attack request rejected"
	LogMsgAttackResolved       = "Attack resolved"
	LogMsgCombinationRejected  = "Combination request rejected"
	LogMsgCombinationCompleted = "Combination completed"
	LogMsgSkillLookupFailed    = "Skill lookup failed"
)
