package dice

// Notation limits. Anything above these is rejected as invalid notation so a single
// request cannot ask for an unbounded number of draws.
const (
	MinDiceCount = 1
	MaxDiceCount = 100
	MinDieSize   = 2
	MaxDieSize   = 1000
	MaxFlatBonus = 10000
)

const (
	// LogMsgSecureRollFailed is logged when crypto/rand cannot produce a value
	LogMsgSecureRollFailed = "Secure dice roll failed, falling back to math/rand"
)
