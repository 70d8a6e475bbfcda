package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"

	// Player data errors
	ErrMsgDataUnavailable = "player data unavailable"
	ErrMsgProfileNotFound = "profile not found"

	// Math errors
	ErrMsgInvalidPrecision = "precision must be an integer"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidConfig is fatal and only raised while loading configuration.
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

	// ErrDataUnavailable is recoverable: callers substitute configured defaults.
	ErrDataUnavailable = errors.New(ErrMsgDataUnavailable)
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	ErrInvalidPrecision = errors.New(ErrMsgInvalidPrecision)
)
