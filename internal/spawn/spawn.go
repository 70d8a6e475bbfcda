// Package spawn rescales boss spawn chances in place.
package spawn

import (
	"math"

	"github.com/osse101/LiveLikeSpawns_Go/internal/utils"
)

// Record is the spawn chance of one boss at one location
type Record struct {
	Boss   string `json:"BossName"`
	Chance int    `json:"BossChance"`
}

// Location owns the spawn records of one map. Spawns may be nil.
type Location struct {
	Name   string    `json:"Name"`
	Spawns []*Record `json:"BossLocationSpawn,omitempty"`
}

// Change describes a spawn chance that was rewritten
type Change struct {
	Location string
	Boss     string
	From     int
	To       int
}

// ChangeFunc is notified for every record whose chance actually changed
type ChangeFunc func(Change)

// Rules holds the per-boss overrides
type Rules struct {
	blocked map[string]struct{}
	ignored map[string]map[string]struct{}
}

// NewRules builds the override lookup from configuration lists.
// blocked bosses are always forced to 0; ignored bosses are left untouched on the listed locations.
func NewRules(blocked []string, ignored map[string][]string) Rules {
	r := Rules{
		blocked: make(map[string]struct{}, len(blocked)),
		ignored: make(map[string]map[string]struct{}, len(ignored)),
	}

	for _, boss := range blocked {
		r.blocked[boss] = struct{}{}
	}

	for location, bosses := range ignored {
		set := make(map[string]struct{}, len(bosses))
		for _, boss := range bosses {
			set[boss] = struct{}{}
		}
		r.ignored[location] = set
	}

	return r
}

// IsBlocked reports whether boss is forced to a zero chance everywhere
func (r Rules) IsBlocked(boss string) bool {
	_, ok := r.blocked[boss]
	return ok
}

// IsIgnored reports whether boss is exempt from adjustment on location
func (r Rules) IsIgnored(location, boss string) bool {
	_, ok := r.ignored[location][boss]
	return ok
}

// ScaleChance rescales a single chance: rounded half up, clamped to [MinChance, MaxChance]
func ScaleChance(chance int, relative float64) int {
	scaled := utils.RoundHalfUp(float64(chance) * relative)
	if math.IsNaN(scaled) {
		return chance
	}

	// clamp before converting so huge multipliers cannot overflow int
	scaled = math.Max(MinChance, math.Min(MaxChance, scaled))
	return int(scaled)
}

// AdjustLocations rescales every eligible record by relative and returns how many changed
func AdjustLocations(locations []*Location, relative float64, rules Rules, onChange ChangeFunc) int {
	changed := 0

	for _, location := range locations {
		if location == nil {
			continue
		}

		for _, record := range location.Spawns {
			if record == nil || rules.IsIgnored(location.Name, record.Boss) {
				continue
			}

			original := record.Chance
			if rules.IsBlocked(record.Boss) {
				record.Chance = MinChance
			} else {
				record.Chance = ScaleChance(original, relative)
			}

			if record.Chance == original {
				continue
			}

			changed++
			if onChange != nil {
				onChange(Change{
					Location: location.Name,
					Boss:     record.Boss,
					From:     original,
					To:       record.Chance,
				})
			}
		}
	}

	return changed
}

// Apply rescales locations from lastMultiplier to newMultiplier and returns the
// multiplier to remember for the next cycle.
//
// Each call divides out the previously applied multiplier, so repeated identical
// calls leave chances alone instead of compounding.
func Apply(locations []*Location, newMultiplier, lastMultiplier float64, rules Rules, onChange ChangeFunc) float64 {
	rescale(locations, newMultiplier, lastMultiplier, rules, onChange)
	return newMultiplier
}

// rescale scales locations by newMultiplier/lastMultiplier and returns that factor
// along with the number of changed spawns
func rescale(locations []*Location, newMultiplier, lastMultiplier float64, rules Rules, onChange ChangeFunc) (float64, int) {
	relative := newMultiplier / lastMultiplier
	return relative, AdjustLocations(locations, relative, rules, onChange)
}
