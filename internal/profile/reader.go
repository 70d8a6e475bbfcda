package profile

import (
	"context"
	"fmt"

	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
	"github.com/osse101/LiveLikeSpawns_Go/internal/utils"
)

// Defaults are substituted when a session has no PMC profile
type Defaults struct {
	Level int
	Hours float64
}

// Reader derives progression metrics from session profiles
type Reader struct {
	source   Source
	defaults Defaults
}

// NewReader creates a metrics reader over source
func NewReader(source Source, defaults Defaults) *Reader {
	return &Reader{source: source, defaults: defaults}
}

// Level returns the PMC level (0 when the profile has no info block).
// Without a PMC profile it returns the default level together with an error
// wrapping domain.ErrDataUnavailable; the value is still meant to be used.
func (r *Reader) Level(ctx context.Context, sessionID string) (int, error) {
	pmc, err := r.source.PMCProfile(ctx, sessionID)
	if err != nil || pmc == nil {
		return r.defaults.Level, unavailable(sessionID, err)
	}
	return pmc.Level(), nil
}

// Hours returns PMC plus Scav raid time in hours, rounded to two decimals.
// A missing Scav profile counts as zero; a missing PMC profile behaves like Level.
func (r *Reader) Hours(ctx context.Context, sessionID string) (float64, error) {
	pmc, err := r.source.PMCProfile(ctx, sessionID)
	if err != nil || pmc == nil {
		return r.defaults.Hours, unavailable(sessionID, err)
	}

	// Scav time is optional
	scav, _ := r.source.ScavProfile(ctx, sessionID)

	seconds := pmc.InGameSeconds() + scav.InGameSeconds()
	return utils.MustRound(seconds/SecondsPerHour, HoursPrecision), nil
}

func unavailable(sessionID string, cause error) error {
	if cause == nil {
		cause = domain.ErrProfileNotFound
	}
	return fmt.Errorf("%w: "+ErrMsgPMCProfileMissing+": %w", domain.ErrDataUnavailable, sessionID, cause)
}
