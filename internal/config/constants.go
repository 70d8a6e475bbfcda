package config

// DefaultModConfigPath is where the mod config lives relative to the working directory
const DefaultModConfigPath = "config/config.json"

// Environment variable names
const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvWorldPath     = "WORLD_PATH"
	EnvProfilesPath  = "PROFILES_PATH"
	EnvLocalesPath   = "LOCALES_PATH"
	EnvLogLevel      = "LOG_LEVEL"
	EnvEnvironment   = "ENVIRONMENT"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgParseEnv           = "parse env: %w"
	ErrMsgInvalidLogFormat   = "invalid LOG_FORMAT %q: expected json or text"
	ErrMsgInvalidLogLevel    = "invalid LOG_LEVEL %q: expected debug, info, warn or error"
	ErrMsgReadModConfig      = "failed to read mod config %s: %w"
	ErrMsgModConfigSchema    = "%w: mod config %s: %w"
	ErrMsgDecodeModConfig    = "%w: failed to decode mod config %s: %w"
	ErrMsgModConfigRules     = "%w: mod config field %s failed on %q"
	ErrMsgModConfigStruct    = "%w: mod config: %w"
	ErrMsgSchemaVersionUnset = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaVersionDiff  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingEnvVars     = "missing required environment variables: %s"
)

// ============================================================================
// Warnings
// ============================================================================

const (
	WarnMsgDebugInProduction = "LOG_LEVEL is debug in a production environment - every spawn change will be logged"
	WarnMsgNoLocales         = "LOCALES_PATH is not set - bosses and locations will be logged by their raw ids"
)
