package utils

import (
	"fmt"
	"math"

	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
)

// RoundHalfUp rounds to the nearest integer, with halves rounded towards positive infinity.
// Spawn chances and hour totals were balanced against this rule, so math.Round
// (halves away from zero) must not be used for them.
func RoundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

// Round rounds num to the given number of decimal places using RoundHalfUp.
// precision must be a whole number; fractional precision returns domain.ErrInvalidPrecision.
func Round(num, precision float64) (float64, error) {
	if math.Round(precision) != precision {
		return 0, fmt.Errorf("%w: got %v", domain.ErrInvalidPrecision, precision)
	}

	scalingFactor := math.Pow(10, precision)
	return RoundHalfUp(num*scalingFactor) / scalingFactor, nil
}

// MustRound is Round for call sites that pass a constant precision
func MustRound(num float64, precision int) float64 {
	rounded, _ := Round(num, float64(precision))
	return rounded
}
