package sector

import (
	"math"
	"testing"
)

const epsilon = 1e-9

// assertNear fails the test when got differs from want by more than epsilon.
func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		geom    Geometry
		wantErr bool
	}{
		{"valid pie", Geometry{Radius: 100}, false},
		{"valid donut", Geometry{Radius: 100, InnerRadius: 40}, false},
		{"zero radius", Geometry{}, true},
		{"negative radius", Geometry{Radius: -1}, true},
		{"negative inner", Geometry{Radius: 100, InnerRadius: -1}, true},
		{"inner equals outer", Geometry{Radius: 100, InnerRadius: 100}, true},
		{"inner exceeds outer", Geometry{Radius: 100, InnerRadius: 120}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.geom.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpanDefaultsToFullTurn(t *testing.T) {
	for _, dir := range []Direction{Clockwise, CounterClockwise} {
		g := Geometry{Radius: 100, StartAngle: math.Pi / 2, EndAngle: math.Pi / 2, Direction: dir}
		assertNear(t, dir.String()+" span", g.Span(), twoPi)
	}
}

func TestSpanPartial(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		dir        Direction
		want       float64
	}{
		{"ccw quarter", 0, math.Pi / 2, CounterClockwise, math.Pi / 2},
		{"cw quarter", math.Pi / 2, 0, Clockwise, math.Pi / 2},
		{"ccw half from top", math.Pi / 2, 3 * math.Pi / 2, CounterClockwise, math.Pi},
		// End angle on the "wrong" side of start for the direction:
		// normalized by adding a full turn.
		{"ccw wrapped", math.Pi / 2, 0, CounterClockwise, 3 * math.Pi / 2},
		{"cw wrapped", 0, math.Pi / 2, Clockwise, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Geometry{Radius: 100, StartAngle: tt.start, EndAngle: tt.end, Direction: tt.dir}
			assertNear(t, "span", g.Span(), tt.want)
		})
	}
}

func TestSpanExplicitMultiTurn(t *testing.T) {
	g := Geometry{Radius: 100, StartAngle: 0, EndAngle: 4 * math.Pi, Direction: CounterClockwise}
	assertNear(t, "span", g.Span(), 4*math.Pi)

	g = Geometry{Radius: 100, StartAngle: 4 * math.Pi, EndAngle: 0, Direction: Clockwise}
	assertNear(t, "span", g.Span(), 4*math.Pi)
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{twoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-twoPi, 0},
	}
	for _, tt := range tests {
		assertNear(t, "wrapAngle", wrapAngle(tt.in), tt.want)
	}
}
