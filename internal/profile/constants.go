package profile

// SecondsPerHour converts recorded raid seconds to hours
const SecondsPerHour = 3600.0

// HoursPrecision is the number of decimals kept on player hours
const HoursPrecision = 2

// Error messages
const (
	ErrMsgPMCProfileMissing = "no PMC profile for session %s"
	ErrMsgDecodeProfiles    = "failed to decode profiles: %w"
)
