package sector

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DataSource supplies one raw magnitude per record. It is the only required
// collaborator; everything else on the chart has a usable default.
//
// Calls are assumed synchronous and side-effect-free. The chart queries the
// data source once per layout pass and caches nothing across passes beyond
// the pass's own Slice records.
type DataSource interface {
	// NumRecords returns the number of slices.
	NumRecords() int
	// Value returns the raw magnitude for a record. Non-positive values
	// produce zero-width slices (see Normalize).
	Value(index int) float64
}

// SliceFiller is an optional DataSource capability that overrides the
// default fill for individual slices. Return ok=false to keep the default
// palette color for that index.
type SliceFiller interface {
	SliceFill(index int) (fill Color, ok bool)
}

// RadialOffsetter is an optional DataSource capability that displaces
// slices outward along their bisecting angle, "exploding" the chart.
// Zero means no offset.
type RadialOffsetter interface {
	RadialOffset(index int) float64
}

// LegendTitler is an optional DataSource capability that supplies legend
// titles. Return "" to keep the default title for that index.
type LegendTitler interface {
	LegendTitle(index int) string
}

// Delegate receives slice-selection notifications from input dispatch.
type Delegate interface {
	SliceSelected(index int)
}

// EventDelegate is an optional Delegate capability whose method is called
// instead of SliceSelected when implemented, carrying the originating
// pointer event.
type EventDelegate interface {
	SliceSelectedWithEvent(index int, ev SliceEvent)
}

// Chart orchestrates layout, rendering, and hit testing for one pie or
// donut. It owns the geometry and style properties; slice records are
// recomputed lazily whenever a property or the data changes.
//
// A Chart is not safe for concurrent use. The intended execution context is
// a single UI/game-loop thread, so no internal locking is provided (no
// atomic — sector is single-threaded).
type Chart struct {
	dataSource DataSource

	delegate      Delegate
	eventDelegate EventDelegate // cached capability of delegate

	// OnSliceSelected, when non-nil, is called on every slice selection in
	// addition to the delegate. Convenient for callers who don't want to
	// implement an interface.
	OnSliceSelected func(SliceEvent)

	// Geometry. geom.Center is derived from bounds and centerAnchor during
	// the layout pass.
	geom         Geometry
	bounds       Rect
	centerAnchor Vec2

	// Presentation.
	borderStyle            LineStyle
	overlayFill            Color
	labelRotatesWithRadius bool

	// Data-source capabilities, probed once per layout pass.
	filler    SliceFiller
	offsetter RadialOffsetter
	titler    LegendTitler

	// Cached layout, valid while !layoutDirty. Buffers grow to a
	// high-water mark and are reused across passes.
	layoutDirty bool
	slices      []Slice
	values      []float64
	widths      []float64
	fills       []Color

	// Input state (input.go).
	pointers     [maxPointers]chartPointer
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	dragDeadZone float64

	// Render buffers (render.go), grown to a high-water mark and reused
	// across frames.
	verts   []ebiten.Vertex
	inds    []uint16
	outline []Vec2
}

// NewChart creates a chart for the given data source. A nil data source is
// allowed and yields an empty chart until SetDataSource is called.
//
// Defaults: outer radius 80, no donut hole, start angle π/2 (twelve
// o'clock), full-circle span, clockwise sweep, center anchored at the
// middle of the bounds.
func NewChart(ds DataSource) *Chart {
	return &Chart{
		dataSource: ds,
		geom: Geometry{
			Radius:     80,
			StartAngle: math.Pi / 2,
			EndAngle:   math.Pi / 2,
			Direction:  Clockwise,
		},
		centerAnchor: Vec2{X: 0.5, Y: 0.5},
		layoutDirty:  true,
		dragDeadZone: defaultDragDeadZone,
	}
}

// SetDataSource replaces the data source and invalidates the cached layout.
func (c *Chart) SetDataSource(ds DataSource) {
	c.dataSource = ds
	c.layoutDirty = true
}

// DataSource returns the current data source.
func (c *Chart) DataSource() DataSource {
	return c.dataSource
}

// SetDelegate sets the selection delegate. The EventDelegate capability is
// probed once here rather than on every dispatch.
func (c *Chart) SetDelegate(d Delegate) {
	c.delegate = d
	c.eventDelegate, _ = d.(EventDelegate)
}

// Reload discards the cached slice records. The next access recomputes the
// layout from the data source. Call after the underlying data changes.
func (c *Chart) Reload() {
	c.layoutDirty = true
}

// --- Geometry properties ---
//
// Every setter invalidates the cached layout; slices are recomputed on the
// next read. The radius setters reject configurations violating
// InnerRadius < Radius up front, leaving the chart unchanged.

// SetRadius sets the outer radius.
func (c *Chart) SetRadius(r float64) error {
	g := c.geom
	g.Radius = r
	if err := g.Validate(); err != nil {
		return err
	}
	c.geom.Radius = r
	c.layoutDirty = true
	return nil
}

// SetInnerRadius sets the donut hole radius. Zero renders a full pie.
func (c *Chart) SetInnerRadius(r float64) error {
	g := c.geom
	g.InnerRadius = r
	if err := g.Validate(); err != nil {
		return err
	}
	c.geom.InnerRadius = r
	c.layoutDirty = true
	return nil
}

// SetStartAngle sets the angle at which the first slice begins, in radians.
func (c *Chart) SetStartAngle(a float64) {
	c.geom.StartAngle = a
	c.layoutDirty = true
}

// SetEndAngle sets the angle at which the last slice ends. Equal start and
// end angles (the default) span a full circle; see Geometry.Span.
func (c *Chart) SetEndAngle(a float64) {
	c.geom.EndAngle = a
	c.layoutDirty = true
}

// SetDirection sets the slice sweep direction.
func (c *Chart) SetDirection(d Direction) {
	c.geom.Direction = d
	c.layoutDirty = true
}

// SetBounds sets the rectangle the chart occupies, in local coordinates.
// The center anchor is resolved against it.
func (c *Chart) SetBounds(b Rect) {
	c.bounds = b
	c.layoutDirty = true
}

// SetCenterAnchor places the pie center within the bounds as unit-square
// coordinates: {0.5, 0.5} is the middle, {0, 0} the top-left corner.
func (c *Chart) SetCenterAnchor(anchor Vec2) {
	c.centerAnchor = anchor
	c.layoutDirty = true
}

// SetBorderStyle sets the stroke drawn around each slice.
func (c *Chart) SetBorderStyle(s LineStyle) {
	c.borderStyle = s
	c.layoutDirty = true
}

// SetOverlayFill sets a fill drawn over the whole pie after the slices,
// e.g. a translucent sheen. A zero-alpha color disables it.
func (c *Chart) SetOverlayFill(fill Color) {
	c.overlayFill = fill
	c.layoutDirty = true
}

// SetLabelRotatesWithRadius controls whether LabelAnchor reports the
// bisecting angle as the label rotation.
func (c *Chart) SetLabelRotatesWithRadius(rotate bool) {
	c.labelRotatesWithRadius = rotate
	c.layoutDirty = true
}

// Radius returns the outer radius.
func (c *Chart) Radius() float64 { return c.geom.Radius }

// InnerRadius returns the donut hole radius.
func (c *Chart) InnerRadius() float64 { return c.geom.InnerRadius }

// StartAngle returns the first slice's start angle.
func (c *Chart) StartAngle() float64 { return c.geom.StartAngle }

// EndAngle returns the last slice's end angle.
func (c *Chart) EndAngle() float64 { return c.geom.EndAngle }

// Direction returns the sweep direction.
func (c *Chart) Direction() Direction { return c.geom.Direction }

// Bounds returns the chart bounds.
func (c *Chart) Bounds() Rect { return c.bounds }

// CenterAnchor returns the unit-square center anchor.
func (c *Chart) CenterAnchor() Vec2 { return c.centerAnchor }

// BorderStyle returns the per-slice border stroke style.
func (c *Chart) BorderStyle() LineStyle { return c.borderStyle }

// OverlayFill returns the overlay fill color.
func (c *Chart) OverlayFill() Color { return c.overlayFill }

// LabelRotatesWithRadius reports whether labels rotate with the radius.
func (c *Chart) LabelRotatesWithRadius() bool { return c.labelRotatesWithRadius }

// Geometry returns the resolved geometry, including the absolute center
// point derived from the bounds and anchor.
func (c *Chart) Geometry() Geometry {
	g := c.geom
	g.Center = c.resolveCenter()
	return g
}

// resolveCenter maps the unit-square anchor into the bounds.
func (c *Chart) resolveCenter() Vec2 {
	return Vec2{
		X: c.bounds.X + c.centerAnchor.X*c.bounds.Width,
		Y: c.bounds.Y + c.centerAnchor.Y*c.bounds.Height,
	}
}

// --- Layout pass ---

// ensureLayout recomputes the cached slice records when dirty: pull values,
// normalize, lay out, then apply per-slice offsets and fills from the data
// source capabilities. Capabilities are probed once per pass, not per call.
func (c *Chart) ensureLayout() {
	if !c.layoutDirty {
		return
	}

	c.geom.Center = c.resolveCenter()
	c.values = c.values[:0]
	c.widths = c.widths[:0]
	c.slices = c.slices[:0]
	c.fills = c.fills[:0]
	c.layoutDirty = false

	ds := c.dataSource
	if ds == nil {
		c.filler, c.offsetter, c.titler = nil, nil, nil
		return
	}

	c.filler, _ = ds.(SliceFiller)
	c.offsetter, _ = ds.(RadialOffsetter)
	c.titler, _ = ds.(LegendTitler)

	n := ds.NumRecords()
	for i := 0; i < n; i++ {
		c.values = append(c.values, ds.Value(i))
	}

	c.widths = Normalize(c.values, c.widths)
	c.slices = Layout(c.widths, c.geom, c.slices)

	for i := range c.slices {
		c.slices[i].Value = c.values[i]
		if c.offsetter != nil {
			if off := c.offsetter.RadialOffset(i); off > 0 {
				c.slices[i].Offset = off
			}
		}
		fill := DefaultSliceColor(i)
		if c.filler != nil {
			if f, ok := c.filler.SliceFill(i); ok {
				fill = f
			}
		}
		c.fills = append(c.fills, fill)
	}
}

// Slices returns the current slice records, recomputing them if a property
// or the data changed since the last pass. The returned slice MUST NOT be
// mutated by the caller and is only valid until the next layout pass.
// An empty chart (no records, or all values non-positive with zero widths
// throughout) returns records with zero extents, or none at all.
func (c *Chart) Slices() []Slice {
	c.ensureLayout()
	return c.slices
}

// NumSlices returns the number of slice records in the current layout.
func (c *Chart) NumSlices() int {
	c.ensureLayout()
	return len(c.slices)
}

// SliceFill returns the resolved fill color for a slice: the data source's
// override when present, the default palette color otherwise.
func (c *Chart) SliceFill(index int) Color {
	c.ensureLayout()
	if index < 0 || index >= len(c.fills) {
		return DefaultSliceColor(index)
	}
	return c.fills[index]
}

// HitSlice maps a point in local coordinates to the record index of the
// slice containing it. ok is false when the point misses every slice.
func (c *Chart) HitSlice(x, y float64) (index int, ok bool) {
	c.ensureLayout()
	return HitTest(x, y, c.geom, c.slices)
}

// LabelAnchor returns the label anchor point and rotation for a slice,
// using the chart's label-rotates-with-radius setting. fraction selects the
// anchor radius between the inner (0) and outer (1) edge.
func (c *Chart) LabelAnchor(index int, fraction float64) (Vec2, float64) {
	c.ensureLayout()
	if index < 0 || index >= len(c.slices) {
		return c.geom.Center, 0
	}
	return LabelAnchor(c.slices[index], c.geom, fraction, c.labelRotatesWithRadius)
}

// fireSelected dispatches a slice selection to the callback and delegate.
func (c *Chart) fireSelected(index int, ev SliceEvent) {
	if c.OnSliceSelected != nil {
		c.OnSliceSelected(ev)
	}
	if c.eventDelegate != nil {
		c.eventDelegate.SliceSelectedWithEvent(index, ev)
	} else if c.delegate != nil {
		c.delegate.SliceSelected(index)
	}
}
