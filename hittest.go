package sector

import "math"

// HitTest maps a point in local coordinates (screen convention, Y down) back
// to the index of the slice containing it. The second return value is false
// when no slice contains the point: the donut hole, the area outside the
// outer radius, the gap of a partial-span pie, or an empty chart.
//
// Each candidate slice is tested in its own frame: an exploded slice is
// displaced along its bisecting angle, so the point is first translated by
// the inverse of that displacement before the polar conversion. The radius
// must satisfy InnerRadius <= r <= Radius and the angle must fall inside
// the slice's half-open interval, measured from the slice's start in the
// configured direction with wraparound at 2π.
//
// Candidates are checked in index order and the first match wins, so a
// point exactly on the boundary shared by two slices always resolves to
// the later slice (whose start angle it equals), never to both or neither.
func HitTest(x, y float64, geom Geometry, slices []Slice) (int, bool) {
	if geom.Validate() != nil {
		return 0, false
	}

	dir := geom.Direction.sign()
	for i := range slices {
		s := &slices[i]
		extent := s.Extent()
		if extent <= 0 {
			continue
		}

		// Translate into the slice's offset-relative frame. Screen Y
		// grows downward, so the bisector's sin component is negated.
		bis := s.Bisector()
		px := x - geom.Center.X - s.Offset*math.Cos(bis)
		py := y - geom.Center.Y + s.Offset*math.Sin(bis)

		r := math.Hypot(px, py)
		if r < geom.InnerRadius || r > geom.Radius {
			continue
		}

		// Angle of the point in the mathematical convention.
		theta := math.Atan2(-py, px)

		// Distance from the slice start, measured along the sweep
		// direction, in [0, 2π). Zero distance means the point sits on
		// the start boundary, which belongs to this slice.
		d := wrapAngle((theta - s.StartAngle) * dir)
		if d < extent {
			return s.Index, true
		}
	}
	return 0, false
}
