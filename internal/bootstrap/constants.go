package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Live Like Boss Spawn Chances"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Data Loading
// =============================================================================

const (
	LogMsgWorldLoaded    = "World locations loaded"
	LogMsgProfilesLoaded = "Session profiles loaded"
	LogMsgLocalesLoaded  = "Locale tables loaded"

	ErrMsgOpenDataFile = "failed to open %s: %w"
)

// =============================================================================
// Lifecycle
// =============================================================================

const (
	LogMsgModDisabled                = "Mod disabled in config.json"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgGameStartSubscribed        = "Game start handler registered"
	LogMsgServiceReady               = "Boss spawn service ready"

	ErrMsgPhaseOrder      = "lifecycle phase out of order"
	ErrMsgNotReady        = "boss spawn service not ready"
	ErrMsgPhaseSequence   = "%w: %s called after %s"
	ErrMsgMissingHostData = "PostDBLoad needs both world and profile data"
)
