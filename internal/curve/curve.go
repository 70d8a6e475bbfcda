// Package curve implements piecewise-linear breakpoint tables.
package curve

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/LiveLikeSpawns_Go/internal/domain"
)

// Point is one breakpoint of a table. In JSON it is written as a two-element array [x, y].
type Point struct {
	X float64
	Y float64
}

// UnmarshalJSON decodes a point from its [x, y] array form
func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: breakpoint must have exactly 2 values, got %d", domain.ErrInvalidConfig, len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes a point as [x, y]
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// Table is an ordered breakpoint table describing a piecewise-linear curve.
// X values are expected to be non-decreasing; Interpolate does not require it.
type Table []Point

// Validate rejects tables that cannot be interpolated
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, ErrMsgEmptyTable)
	}
	return nil
}

// Interpolate evaluates the table at x.
//
// Queries left of the first point return the first Y and queries right of the last
// point return the last Y. A single-point table is constant. Otherwise the first
// point with X >= x is blended with the point before it, so where adjacent points
// share an X the earlier one wins at that X. An empty table returns 0; validate at
// load time.
func Interpolate(table Table, x float64) float64 {
	if len(table) == 0 {
		return 0
	}

	if len(table) == 1 {
		return table[0].Y
	}

	if x <= table[0].X {
		return table[0].Y
	}

	for i := 1; i < len(table); i++ {
		if table[i].X < x {
			continue
		}

		prev, cur := table[i-1], table[i]
		if cur.X-prev.X == 0 {
			return cur.Y
		}

		return prev.Y + (x-prev.X)*(cur.Y-prev.Y)/(cur.X-prev.X)
	}

	return table[len(table)-1].Y
}
