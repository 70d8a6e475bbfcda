package progression

// NeutralFactor is the progression factor used when no metric contributes
const NeutralFactor = 1.0

// Metric identifies a raw progression metric
type Metric string

const (
	MetricPlayerLevel Metric = "player_level"
	MetricPlayerHours Metric = "player_hours"
)

// Error messages
const (
	ErrMsgEmptyRange     = "range min (%v) and max (%v) must differ"
	ErrMsgNonFiniteRange = "range bounds must be finite"

	ErrMsgInvalidOutputRange = "adjustment range needs 0 < min <= max, got min %v max %v"
	ErrMsgNonPositiveRate    = "progression rate breakpoint %d (y=%v) maps to multiplier %v, must be > 0"
)

