package sector

import (
	"errors"
	"math"
)

// ErrInvalidGeometry reports a radius configuration that cannot describe a
// pie: a non-positive outer radius, a negative inner radius, or an inner
// radius that is not strictly smaller than the outer radius. It is surfaced
// at configuration time so the invalid state is caught immediately rather
// than at layout time.
var ErrInvalidGeometry = errors.New("sector: invalid geometry")

const twoPi = 2 * math.Pi

// Geometry describes the pie's shape and placement in local coordinates.
// Center is an absolute point; Chart resolves its unit-square anchor into
// this before calling the layout functions.
type Geometry struct {
	// Radius is the outer radius. Must be > 0.
	Radius float64
	// InnerRadius carves a donut hole. Must be >= 0 and < Radius.
	InnerRadius float64
	// StartAngle is where the first slice begins, in radians
	// (mathematical convention, see Direction).
	StartAngle float64
	// EndAngle is where the last slice ends. When StartAngle == EndAngle
	// the pie spans a full turn rather than collapsing to nothing.
	EndAngle float64
	// Direction is the sweep order of the slices.
	Direction Direction
	// Center is the pie's center point.
	Center Vec2
}

// Validate checks the radius invariants. Angle fields are never invalid:
// any pair of start/end angles describes some span.
func (g Geometry) Validate() error {
	if g.Radius <= 0 {
		return ErrInvalidGeometry
	}
	if g.InnerRadius < 0 || g.InnerRadius >= g.Radius {
		return ErrInvalidGeometry
	}
	return nil
}

// Span returns the total angular extent of the pie as a positive magnitude.
//
// The raw extent is EndAngle-StartAngle read in the configured direction.
// When that reading is zero or runs against the direction, one full turn is
// added, so the default (both angles zero) is exactly 2π and an unset angle
// pair never produces an invisible chart. Extents beyond 2π survive only
// when configured explicitly (e.g. EndAngle = StartAngle + 4π counter-
// clockwise).
func (g Geometry) Span() float64 {
	span := (g.EndAngle - g.StartAngle) * g.Direction.sign()
	if span <= 0 {
		span += twoPi * (1 + math.Floor(-span/twoPi))
	}
	return span
}

// wrapAngle maps an angle into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
