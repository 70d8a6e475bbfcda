package progression

import (
	"fmt"
	"math"

	"github.com/osse101/LiveLikeSpawns_Go/internal/curve"
	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
)

// Range bounds either a raw progression metric or the output multiplier
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate rejects ranges that cannot normalize a value
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgNonFiniteRange)
	}
	if r.Max == r.Min {
		return fmt.Errorf("%w: "+ErrMsgEmptyRange, domain.ErrInvalidConfig, r.Min, r.Max)
	}
	return nil
}

// Fraction normalizes value against the range. The result is not clamped;
// values outside the range map outside [0, 1].
func Fraction(r Range, value float64) float64 {
	return (value - r.Min) / (r.Max - r.Min)
}

// Factor converts a raw metric into a progression factor through the breakpoint table
func Factor(r Range, table curve.Table, value float64) float64 {
	return curve.Interpolate(table, Fraction(r, value))
}

// Aggregate reduces progression factors to the adjustment multiplier.
//
// The lowest factor wins so that any single low-progress metric holds the whole
// adjustment back. With no factors the neutral factor 1 is used, which maps to out.Max.
// Factors are not clamped, so a table with values above 1 can push past out.Max.
func Aggregate(factors []float64, out Range) float64 {
	minFactor := NeutralFactor
	if len(factors) > 0 {
		minFactor = factors[0]
		for _, f := range factors[1:] {
			minFactor = math.Min(minFactor, f)
		}
	}

	return (out.Max-out.Min)*minFactor + out.Min
}
