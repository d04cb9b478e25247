package sector

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// svgArcLimit is the largest sweep emitted as a single SVG arc command.
// Sweeps at or beyond a half turn are split so the large-arc flag stays
// unambiguous and full-circle slices don't collapse to a zero-length arc.
const svgArcLimit = math.Pi / 2

// WriteSVG emits the chart's current layout as a standalone SVG document:
// one path per positive-width slice (explode offsets applied), stroked with
// the chart's border style, plus the overlay fill. It is a pure function of
// the chart state and needs no ebiten frame, so it works headless — e.g.
// for server-side chart generation or golden-file tests.
//
// width and height are the document dimensions in pixels; the chart draws
// at its configured bounds/center within them.
func (c *Chart) WriteSVG(w io.Writer, width, height int) error {
	c.ensureLayout()

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(width, height)

	stroke := "stroke:none"
	if c.borderStyle.Width > 0 && c.borderStyle.Color.A > 0 {
		stroke = fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%s",
			svgRGB(c.borderStyle.Color), svgNum(c.borderStyle.Color.A), svgNum(c.borderStyle.Width))
	}

	for i := range c.slices {
		s := c.slices[i]
		if s.Extent() <= 0 {
			continue
		}
		fill := c.fills[i]
		style := fmt.Sprintf("fill:%s;fill-opacity:%s;%s",
			svgRGB(fill), svgNum(fill.A), stroke)
		canvas.Path(c.sectorPath(s), style)
	}

	if c.overlayFill.A > 0 && len(c.slices) > 0 {
		span := c.geom.Span() * c.geom.Direction.sign()
		full := Slice{
			StartAngle: c.geom.StartAngle,
			EndAngle:   c.geom.StartAngle + span,
		}
		if full.Extent() > 0 {
			style := fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:none",
				svgRGB(c.overlayFill), svgNum(c.overlayFill.A))
			canvas.Path(c.sectorPath(full), style)
		}
	}

	canvas.End()
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sector: write svg: %w", err)
	}
	return nil
}

// sectorPath builds the SVG path data for one sector: the outer arc from
// start to end, then either the inner arc back (donut) or a line through
// the center (pie), closed.
func (c *Chart) sectorPath(s Slice) string {
	geom := c.geom
	cx, cy := sectorOrigin(s, geom)

	var b strings.Builder

	ox, oy := svgPointAt(cx, cy, geom.Radius, s.StartAngle)
	fmt.Fprintf(&b, "M%s,%s", svgNum(ox), svgNum(oy))
	svgArc(&b, cx, cy, geom.Radius, s.StartAngle, s.EndAngle)

	if geom.InnerRadius > 0 {
		ix, iy := svgPointAt(cx, cy, geom.InnerRadius, s.EndAngle)
		fmt.Fprintf(&b, "L%s,%s", svgNum(ix), svgNum(iy))
		svgArc(&b, cx, cy, geom.InnerRadius, s.EndAngle, s.StartAngle)
	} else {
		fmt.Fprintf(&b, "L%s,%s", svgNum(cx), svgNum(cy))
	}

	b.WriteString("Z")
	return b.String()
}

// svgArc appends arc commands sweeping from angle a0 to a1 at the given
// radius. The sweep is split into segments below svgArcLimit; the SVG sweep
// flag is 1 for sweeps that are clockwise on screen (decreasing
// mathematical angle).
func svgArc(b *strings.Builder, cx, cy, r, a0, a1 float64) {
	sweep := a1 - a0
	segs := int(math.Ceil(math.Abs(sweep) / svgArcLimit))
	if segs < 1 {
		segs = 1
	}
	delta := sweep / float64(segs)

	flag := 0
	if sweep < 0 {
		flag = 1
	}

	for i := 1; i <= segs; i++ {
		x, y := svgPointAt(cx, cy, r, a0+float64(i)*delta)
		fmt.Fprintf(b, "A%s,%s 0 0 %d %s,%s", svgNum(r), svgNum(r), flag, svgNum(x), svgNum(y))
	}
}

// svgPointAt maps a polar coordinate into screen space (Y down).
func svgPointAt(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Cos(angle), cy - r*math.Sin(angle)
}

// svgRGB formats a color's RGB channels for a style attribute.
func svgRGB(c Color) string {
	clamp := func(v float64) int {
		n := int(math.Round(v * 255))
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", clamp(c.R), clamp(c.G), clamp(c.B))
}

// svgNum formats a float compactly for path/style data.
func svgNum(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
