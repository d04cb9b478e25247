package sector

import "math"

// LabelAnchor computes the anchor point and rotation for a slice's label.
//
// The anchor sits on the slice's bisecting angle at
// InnerRadius + (Radius-InnerRadius)*fraction from the center, pushed
// outward by the slice's explode offset. fraction 0 anchors at the inner
// edge, 1 at the outer edge, 0.5 at the middle of the ring. Zero-width
// slices still get a well-defined anchor at their start angle.
//
// The returned rotation is 0 unless rotateWithRadius is set, in which case
// it is the bisecting angle so the label text aligns radially. Rotation is
// presentational only — it never affects layout or hit testing. The angle
// follows the mathematical convention; renderers with Y-down rotation
// (such as ebiten's GeoM.Rotate) apply its negation.
func LabelAnchor(s Slice, geom Geometry, fraction float64, rotateWithRadius bool) (Vec2, float64) {
	bis := s.Bisector()
	r := geom.InnerRadius + (geom.Radius-geom.InnerRadius)*fraction + s.Offset

	anchor := Vec2{
		X: geom.Center.X + r*math.Cos(bis),
		Y: geom.Center.Y - r*math.Sin(bis),
	}

	var rot float64
	if rotateWithRadius {
		rot = bis
	}
	return anchor, rot
}
