package curve

// Error messages
const (
	ErrMsgEmptyTable = "breakpoint table has no points"
)
