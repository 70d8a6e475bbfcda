package logger

import (
	"context"
	"log/slog"
)

// ModReporter routes mod diagnostics to slog.
// Info lines are dropped while the mod is disabled, verbose lines additionally
// require verbose logging.
type ModReporter struct {
	base    *slog.Logger
	enabled bool
	verbose bool
}

// NewModReporter creates a reporter over base; a nil base uses the default logger at call time
func NewModReporter(base *slog.Logger, enabled, verbose bool) *ModReporter {
	return &ModReporter{base: base, enabled: enabled, verbose: verbose}
}

func (r *ModReporter) logger(ctx context.Context) *slog.Logger {
	l := r.base
	if l == nil {
		l = slog.Default()
	}
	l = l.With(AttrKeyComponent, ModComponent)
	if id, ok := RequestIDFromContext(ctx); ok {
		l = l.With(AttrKeyRequestID, id)
	}
	return l
}

// Info logs when the mod is enabled
func (r *ModReporter) Info(ctx context.Context, msg string, args ...any) {
	if !r.enabled {
		return
	}
	r.logger(ctx).InfoContext(ctx, msg, args...)
}

// Announce logs at info level even while the mod is disabled
func (r *ModReporter) Announce(ctx context.Context, msg string, args ...any) {
	r.logger(ctx).InfoContext(ctx, msg, args...)
}

// Verbose logs only with verbose logging turned on
func (r *ModReporter) Verbose(ctx context.Context, msg string, args ...any) {
	if !r.verbose {
		return
	}
	r.Info(ctx, msg, args...)
}

// Warn always logs
func (r *ModReporter) Warn(ctx context.Context, msg string, args ...any) {
	r.logger(ctx).WarnContext(ctx, msg, args...)
}

// Error always logs
func (r *ModReporter) Error(ctx context.Context, msg string, args ...any) {
	r.logger(ctx).ErrorContext(ctx, msg, args...)
}
