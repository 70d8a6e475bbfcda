package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/LiveLikeSpawns_Go/internal/logger"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvWorldPath,
	EnvProfilesPath,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaVersionUnset, ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaVersionDiff, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvVars, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if strings.EqualFold(os.Getenv(EnvLogLevel), logger.LogLevelDebug) &&
		os.Getenv(EnvEnvironment) == logger.EnvironmentProduction {
		warnings = append(warnings, WarnMsgDebugInProduction)
	}

	if os.Getenv(EnvLocalesPath) == "" {
		warnings = append(warnings, WarnMsgNoLocales)
	}

	return warnings, nil
}
