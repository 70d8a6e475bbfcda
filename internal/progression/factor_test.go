package progression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LiveLikeSpawns_Go/internal/curve"
	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
)

var linear = curve.Table{{X: 0, Y: 0}, {X: 1, Y: 1}}

func TestFraction(t *testing.T) {
	r := Range{Min: 0, Max: 40}

	assert.InDelta(t, 0.25, Fraction(r, 10), 1e-12)
	assert.InDelta(t, -0.25, Fraction(r, -10), 1e-12, "below range is not clamped")
	assert.InDelta(t, 1.5, Fraction(r, 60), 1e-12, "above range is not clamped")
	assert.InDelta(t, 0.5, Fraction(Range{Min: 10, Max: 20}, 15), 1e-12)
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		value    float64
		expected float64
	}{
		{name: "level inside range", r: Range{Min: 0, Max: 40}, value: 10, expected: 0.25},
		{name: "hours inside range", r: Range{Min: 0, Max: 100}, value: 5, expected: 0.05},
		{name: "below range uses table left edge", r: Range{Min: 5, Max: 40}, value: 1, expected: 0},
		{name: "above range uses table right edge", r: Range{Min: 0, Max: 40}, value: 79, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Factor(tt.r, linear, tt.value), 1e-12)
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Run("takes the lowest factor", func(t *testing.T) {
		got := Aggregate([]float64{0.3, 0.8}, Range{Min: 0.5, Max: 1.0})
		assert.InDelta(t, 0.65, got, 1e-12)
	})

	t.Run("order does not matter", func(t *testing.T) {
		out := Range{Min: 0.2, Max: 1.0}
		assert.Equal(t, Aggregate([]float64{0.9, 0.1, 0.4}, out), Aggregate([]float64{0.4, 0.9, 0.1}, out))
	})

	t.Run("no factors maps to range max", func(t *testing.T) {
		assert.Equal(t, 1.0, Aggregate(nil, Range{Min: 0.5, Max: 1.0}))
		assert.InDelta(t, 0.8, Aggregate([]float64{}, Range{Min: 0.2, Max: 0.8}), 1e-12)
	})

	t.Run("factors are not clamped", func(t *testing.T) {
		assert.InDelta(t, 1.5, Aggregate([]float64{2}, Range{Min: 0.5, Max: 1.0}), 1e-12)
		assert.InDelta(t, 0.25, Aggregate([]float64{-0.5}, Range{Min: 0.5, Max: 1.0}), 1e-12)
	})
}

func TestRange_Validate(t *testing.T) {
	require.NoError(t, Range{Min: 0, Max: 40}.Validate())
	require.NoError(t, Range{Min: 40, Max: 0}.Validate(), "descending ranges normalize fine")

	err := Range{Min: 10, Max: 10}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "must differ")

	err = Range{Min: 0, Max: math.Inf(1)}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
