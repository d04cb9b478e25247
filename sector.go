package sector

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, and anchors throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward (screen convention).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Direction selects the order in which slices sweep around the pie.
//
// All angles in this package follow the mathematical convention: radians,
// increasing counter-clockwise, zero at the positive x axis. "Clockwise"
// therefore means the per-slice angular increment is negated. The screen's
// inverted Y axis is compensated at the rendering and input boundaries, so
// a Clockwise chart also looks clockwise on screen.
type Direction uint8

const (
	// Clockwise sweeps slices in decreasing angle order.
	Clockwise Direction = iota
	// CounterClockwise sweeps slices in increasing angle order.
	CounterClockwise
)

// sign returns the angular increment sign for the direction: -1 for
// Clockwise, +1 for CounterClockwise.
func (d Direction) sign() float64 {
	if d == Clockwise {
		return -1
	}
	return 1
}

// String returns the direction name for debug output.
func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// LineStyle describes how a border stroke is drawn. A zero-value LineStyle
// (Width 0) draws nothing.
type LineStyle struct {
	Color Color
	Width float64
}
