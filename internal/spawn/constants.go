package spawn

// Chance bounds, in percent
const (
	MinChance = 0
	MaxChance = 100
)

// NeutralMultiplier is the last applied multiplier before any adjustment
const NeutralMultiplier = 1.0

// Error messages
const (
	ErrMsgDecodeWorld = "failed to decode world data: %w"
)
