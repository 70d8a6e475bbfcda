package bossspawn

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgAssumeLevel      = "Could not retrieve player profile. Assuming player level is %d."
	LogMsgAssumeHours      = "Could not retrieve player profile. Assuming player hours are %v."
	LogMsgLevelFactor      = "Calculated progression factor of %v for player level %d"
	LogMsgHoursFactor      = "Calculated progression factor of %v for %v player hours"
	LogMsgAdjustmentsAbove = "Player level is %d, and no adjustments will be made at level %d+"
	LogMsgScaling          = "Scaling boss spawn chances to %d%% of their EFT spawn chances"
	LogMsgChanceChanged    = "Changed spawn chance for %s on %s from %d%% to %d%%"
	LogMsgCycleComplete    = "Boss spawn adjustment complete"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgDecodeGameStarted = "failed to decode game start payload: %w"
	ErrMsgMissingSessionID  = "game start event has no session id"
	ErrMsgAdjustCanceled    = "boss spawn adjustment canceled: %w"
)

// FactorPrecision is the number of decimals progression factors are logged with
const FactorPrecision = 2
