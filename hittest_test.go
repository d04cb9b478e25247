package sector

import (
	"math"
	"testing"
)

// polarPoint maps a polar coordinate around geom.Center into the local
// screen space (Y down) used by HitTest.
func polarPoint(geom Geometry, angle, r float64) (float64, float64) {
	return geom.Center.X + r*math.Cos(angle), geom.Center.Y - r*math.Sin(angle)
}

func TestHitTestBisectorMidRadius(t *testing.T) {
	// Hit-test/layout consistency: for every positive-width slice, the
	// point at its bisecting angle and mid radius resolves to its index.
	tests := []struct {
		name   string
		values []float64
		geom   Geometry
	}{
		{"full ccw", []float64{1, 1, 2}, Geometry{
			Radius: 100, Direction: CounterClockwise, Center: Vec2{X: 320, Y: 240},
		}},
		{"full cw", []float64{3, 1, 4, 1, 5}, Geometry{
			Radius: 100, StartAngle: math.Pi / 2, EndAngle: math.Pi / 2,
			Direction: Clockwise, Center: Vec2{X: 320, Y: 240},
		}},
		{"donut cw", []float64{2, 2, 2}, Geometry{
			Radius: 100, InnerRadius: 40, Direction: Clockwise, Center: Vec2{X: 50, Y: 50},
		}},
		{"half pie", []float64{1, 2}, Geometry{
			Radius: 80, StartAngle: 0, EndAngle: math.Pi, Direction: CounterClockwise,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			widths := Normalize(tt.values, nil)
			slices := Layout(widths, tt.geom, nil)
			midR := (tt.geom.InnerRadius + tt.geom.Radius) / 2

			for _, s := range slices {
				if s.Extent() <= 0 {
					continue
				}
				x, y := polarPoint(tt.geom, s.Bisector(), midR)
				idx, ok := HitTest(x, y, tt.geom, slices)
				if !ok || idx != s.Index {
					t.Errorf("slice %d: HitTest = (%d, %v), want (%d, true)", s.Index, idx, ok, s.Index)
				}
			}
		})
	}
}

func TestHitTestBoundaryResolvesToLaterSlice(t *testing.T) {
	// Two equal slices share the boundary at angle π. A point exactly on
	// it belongs to the later slice under the half-open convention.
	geom := Geometry{Radius: 100, Direction: CounterClockwise}
	widths := Normalize([]float64{1, 1}, nil)
	slices := Layout(widths, geom, nil)

	x, y := polarPoint(geom, math.Pi, 50)
	idx, ok := HitTest(x, y, geom, slices)
	if !ok || idx != 1 {
		t.Errorf("boundary point: HitTest = (%d, %v), want (1, true)", idx, ok)
	}

	// The start of the whole pie belongs to the first slice.
	x, y = polarPoint(geom, 0, 50)
	idx, ok = HitTest(x, y, geom, slices)
	if !ok || idx != 0 {
		t.Errorf("start point: HitTest = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestHitTestDonutHole(t *testing.T) {
	geom := Geometry{Radius: 100, InnerRadius: 40, Direction: Clockwise}
	widths := Normalize([]float64{1, 1, 1}, nil)
	slices := Layout(widths, geom, nil)

	for i := 0; i < 12; i++ {
		angle := float64(i) * math.Pi / 6
		x, y := polarPoint(geom, angle, 25)
		if _, ok := HitTest(x, y, geom, slices); ok {
			t.Errorf("angle %v: point in the donut hole reported a hit", angle)
		}
	}
}

func TestHitTestOutsideOuterRadius(t *testing.T) {
	geom := Geometry{Radius: 100, Direction: Clockwise}
	widths := Normalize([]float64{1}, nil)
	slices := Layout(widths, geom, nil)

	x, y := polarPoint(geom, 1.0, 101)
	if _, ok := HitTest(x, y, geom, slices); ok {
		t.Error("point beyond the outer radius reported a hit")
	}
	// The outer edge itself is inside.
	x, y = polarPoint(geom, 1.0, 100)
	if _, ok := HitTest(x, y, geom, slices); !ok {
		t.Error("point on the outer radius reported no hit")
	}
}

func TestHitTestZeroWidthNeverHit(t *testing.T) {
	// values [0, 5]: slice 0 exists but can never be hit; every point in
	// the pie belongs to slice 1.
	geom := Geometry{Radius: 100, Direction: CounterClockwise}
	widths := Normalize([]float64{0, 5}, nil)
	slices := Layout(widths, geom, nil)

	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		x, y := polarPoint(geom, angle, 50)
		idx, ok := HitTest(x, y, geom, slices)
		if !ok || idx != 1 {
			t.Errorf("angle %v: HitTest = (%d, %v), want (1, true)", angle, idx, ok)
		}
	}
}

func TestHitTestEmptyChart(t *testing.T) {
	geom := Geometry{Radius: 100}
	if _, ok := HitTest(0, 0, geom, nil); ok {
		t.Error("empty chart reported a hit")
	}

	// All-zero values leave only zero-width slices: still no match.
	widths := Normalize([]float64{0, 0}, nil)
	slices := Layout(widths, geom, nil)
	if _, ok := HitTest(50, 0, geom, slices); ok {
		t.Error("all-zero chart reported a hit")
	}
}

func TestHitTestInvalidGeometry(t *testing.T) {
	geom := Geometry{Radius: 10, InnerRadius: 20}
	widths := Normalize([]float64{1}, nil)
	slices := Layout(widths, geom, nil)
	if _, ok := HitTest(15, 0, geom, slices); ok {
		t.Error("invalid geometry reported a hit")
	}
}

func TestHitTestPartialSpanGap(t *testing.T) {
	// Upper half pie: points in the lower half miss everything.
	geom := Geometry{Radius: 100, StartAngle: 0, EndAngle: math.Pi, Direction: CounterClockwise}
	widths := Normalize([]float64{1, 1}, nil)
	slices := Layout(widths, geom, nil)

	x, y := polarPoint(geom, -math.Pi/2, 50)
	if _, ok := HitTest(x, y, geom, slices); ok {
		t.Error("point in the uncovered gap reported a hit")
	}
}

func TestHitTestExplodedSlice(t *testing.T) {
	geom := Geometry{Radius: 100, Direction: CounterClockwise, Center: Vec2{X: 200, Y: 200}}
	widths := Normalize([]float64{1, 1}, nil)
	slices := Layout(widths, geom, nil)
	slices[0].Offset = 30

	bis := slices[0].Bisector()

	// A point measured from the displaced origin hits the exploded slice.
	ox := geom.Center.X + 30*math.Cos(bis)
	oy := geom.Center.Y - 30*math.Sin(bis)
	x := ox + 50*math.Cos(bis)
	y := oy - 50*math.Sin(bis)
	idx, ok := HitTest(x, y, geom, slices)
	if !ok || idx != 0 {
		t.Errorf("displaced mid point: HitTest = (%d, %v), want (0, true)", idx, ok)
	}

	// The explode pushes the slice beyond the nominal outer radius.
	x, y = polarPoint(geom, bis, 120)
	idx, ok = HitTest(x, y, geom, slices)
	if !ok || idx != 0 {
		t.Errorf("beyond nominal radius: HitTest = (%d, %v), want (0, true)", idx, ok)
	}

	// Near the true center the displaced slice has moved away.
	x, y = polarPoint(geom, bis, 5)
	if idx, ok = HitTest(x, y, geom, slices); ok && idx == 0 {
		t.Error("point left behind by the explode still hit slice 0")
	}
}
