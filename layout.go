package sector

// Slice is one angular segment of the pie, corresponding to one data record.
// Slice records are transient: they are recomputed on every layout pass and
// never persisted.
//
// StartAngle and EndAngle are signed: EndAngle is StartAngle plus the
// slice's extent in the configured direction, so EndAngle < StartAngle for
// clockwise charts. The interval is half-open: the start angle belongs to
// the slice, the end angle belongs to its successor.
type Slice struct {
	// Index is the data-source record index. Stable identity.
	Index int
	// Value is the raw magnitude supplied by the data source.
	Value float64
	// Width is the normalized width in [0, 1].
	Width float64
	// StartAngle is where the slice begins, radians.
	StartAngle float64
	// EndAngle is where the slice ends, radians.
	EndAngle float64
	// Offset displaces the slice outward along its bisecting angle
	// ("exploded" styling). Always >= 0.
	Offset float64
}

// Extent returns the slice's angular size as a positive magnitude.
func (s Slice) Extent() float64 {
	if s.EndAngle >= s.StartAngle {
		return s.EndAngle - s.StartAngle
	}
	return s.StartAngle - s.EndAngle
}

// Bisector returns the angle midway between the slice's start and end.
// Zero-width slices bisect at their shared start/end angle, so labels and
// legends need no special case for them.
func (s Slice) Bisector() float64 {
	return s.StartAngle + (s.EndAngle-s.StartAngle)/2
}

// Layout assigns each normalized width a contiguous angular interval within
// the geometry's span.
//
// Slices are laid out in index order: the first begins at geom.StartAngle
// and each subsequent slice begins exactly where its predecessor ended.
// Each occupies widths[i] * geom.Span() in the configured direction.
// Zero widths produce zero-extent slices that are retained for stable
// indexing and legend completeness; they are never drawn and never hit.
//
// Layout is a pure function of its inputs: identical widths and geometry
// always yield an identical slice sequence. Value and Offset are left zero
// here; the chart controller fills them in from the data source.
//
// The result is appended to dst (which may be nil) and returned.
func Layout(widths []float64, geom Geometry, dst []Slice) []Slice {
	span := geom.Span() * geom.Direction.sign()
	cursor := geom.StartAngle

	for i, w := range widths {
		end := cursor + w*span
		dst = append(dst, Slice{
			Index:      i,
			Width:      w,
			StartAngle: cursor,
			EndAngle:   end,
		})
		cursor = end
	}
	return dst
}
