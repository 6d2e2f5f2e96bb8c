package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	// Attack operation error messages
	ErrMsgExecuteAttackFailed   = "Failed to execute attack"
	ErrMsgRunCombinationFailed  = "Failed to run attack combination"
	ErrMsgCharacterAttackFailed = "Failed to execute character attack"

	// Character error messages
	ErrMsgGetCharacterFailed    = "Failed to get character"
	ErrMsgUpdateCharacterFailed = "Failed to save character"

	// Grant error messages
	ErrMsgIssueGrantFailed       = "Failed to issue grant"
	ErrMsgAcknowledgeGrantFailed = "Failed to acknowledge grant"
	ErrMsgListPendingFailed      = "Failed to list pending grants"
	ErrMsgListConfirmedFailed    = "Failed to list confirmed grants"
)

// Success messages for API responses
const (
	MsgCharacterSaved    = "Character saved"
	MsgGrantIssued       = "Grant issued"
	MsgGrantAcknowledged = "Grant acknowledged"
)
