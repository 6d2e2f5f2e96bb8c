package postgres

// Error messages
const (
	ErrMsgGetCharacterFailed       = "failed to get character"
	ErrMsgUpsertCharacterFailed    = "failed to upsert character"
	ErrMsgEncodeCharacterFailed    = "failed to encode character"
	ErrMsgSaveConfirmedFailed      = "failed to save confirmed grant"
	ErrMsgListConfirmedFailed      = "failed to list confirmed grants"
	ErrMsgScanConfirmedGrantFailed = "failed to scan confirmed grant"
)
