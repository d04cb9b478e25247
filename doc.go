// Package sector renders interactive pie and donut charts for [Ebitengine].
//
// Sector turns a sequence of numeric values into angular slices, draws them
// as triangle meshes, and maps pointer input back to the originating record
// index. Exploded slices, donut holes, partial angular spans, per-slice
// styling, legends, and SVG export are all built in.
//
// # Quick start
//
// Implement [DataSource] (two methods) and hand it to [NewChart]:
//
//	type sales []float64
//
//	func (s sales) NumRecords() int          { return len(s) }
//	func (s sales) Value(index int) float64  { return s[index] }
//
//	chart := sector.NewChart(sales{30, 20, 50})
//	chart.SetBounds(sector.Rect{Width: 640, Height: 480})
//	chart.SetRadius(160)
//
// Then call [Chart.Update] from your game's Update and [Chart.Draw] from
// its Draw. Selections arrive through [Chart.OnSliceSelected] or a
// [Delegate]:
//
//	chart.OnSliceSelected = func(ev sector.SliceEvent) {
//		log.Printf("slice %d selected", ev.Index)
//	}
//
// # Layout model
//
// Values are normalized to fractional widths ([Normalize]), assigned
// contiguous angular intervals in record order ([Layout]), and hit-tested
// against the same intervals ([HitTest]), so what you see is exactly what
// you can click. All three are pure functions; [Chart] caches their output
// and recomputes it lazily whenever a property setter or [Chart.Reload]
// invalidates it.
//
// Angles are radians in the mathematical convention: counter-clockwise
// positive, zero at the positive x axis. [Clockwise] charts negate the
// per-slice increment; the screen's inverted Y axis is compensated when
// rendering and when reading pointer coordinates, never in the layout
// itself.
//
// # Data source capabilities
//
// Optional interfaces on the data source refine individual slices:
// [SliceFiller] overrides fills, [RadialOffsetter] explodes slices outward,
// [LegendTitler] names legend entries. Each capability is probed once per
// layout pass.
//
// # Static output
//
// [Chart.WriteSVG] emits the current layout as an SVG document without an
// ebiten frame, for server-side rendering or golden-file tests.
//
// See examples/ for runnable demos: basic, donut, exploded, and svg.
//
// [Ebitengine]: https://ebitengine.org
package sector
