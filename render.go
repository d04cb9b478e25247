package sector

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// arcStep is the maximum angular size of one flattened arc segment. π/48
// keeps the chord error under half a pixel for radii up to ~450 px.
const arcStep = math.Pi / 48

// --- White pixel singleton (no sync.Once — sector is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// All sector meshes are untextured and sample this pixel; color comes from
// the vertex colors.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Draw renders the chart into dst: every positive-width slice as a filled
// wedge (or ring segment for donuts), then per-slice borders, then the
// overlay fill across the whole pie. Zero-width slices and empty charts
// emit no geometry.
func (c *Chart) Draw(dst *ebiten.Image) {
	c.ensureLayout()

	for i := range c.slices {
		s := c.slices[i]
		if s.Extent() <= 0 {
			continue
		}
		c.drawSectorFill(dst, s, c.fills[i])
	}

	if c.borderStyle.Width > 0 && c.borderStyle.Color.A > 0 {
		for i := range c.slices {
			s := c.slices[i]
			if s.Extent() <= 0 {
				continue
			}
			c.drawSectorBorder(dst, s)
		}
	}

	if c.overlayFill.A > 0 && len(c.slices) > 0 {
		c.drawOverlay(dst)
	}
}

// drawOverlay fills the chart's full angular span with the overlay color,
// on top of the slices. Explode offsets are ignored: the overlay covers the
// unexploded pie area, like a sheen laid over the plot.
func (c *Chart) drawOverlay(dst *ebiten.Image) {
	span := c.geom.Span() * c.geom.Direction.sign()
	full := Slice{
		StartAngle: c.geom.StartAngle,
		EndAngle:   c.geom.StartAngle + span,
	}
	if full.Extent() <= 0 {
		return
	}
	c.drawSectorFill(dst, full, c.overlayFill)
}

// sectorSteps returns the number of arc segments used to flatten extent.
func sectorSteps(extent float64) int {
	steps := int(math.Ceil(extent / arcStep))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// sectorOrigin returns the sector's displaced center: the chart center
// translated along the bisecting angle by the explode offset. Screen Y
// grows downward, so the sin component is negated.
func sectorOrigin(s Slice, geom Geometry) (float64, float64) {
	bis := s.Bisector()
	return geom.Center.X + s.Offset*math.Cos(bis),
		geom.Center.Y - s.Offset*math.Sin(bis)
}

// drawSectorFill builds and submits the fill mesh for one sector.
func (c *Chart) drawSectorFill(dst *ebiten.Image, s Slice, fill Color) {
	c.appendSectorFill(s, fill)

	var triOp ebiten.DrawTrianglesOptions
	dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &triOp)
}

// appendSectorFill rebuilds c.verts/c.inds with the fill mesh for one
// sector: a center fan for pies, a two-ring strip for donuts. Vertex
// colors are premultiplied at submission time.
func (c *Chart) appendSectorFill(s Slice, fill Color) {
	geom := c.geom
	steps := sectorSteps(s.Extent())
	delta := (s.EndAngle - s.StartAngle) / float64(steps)
	cx, cy := sectorOrigin(s, geom)

	cr := float32(fill.R * fill.A)
	cg := float32(fill.G * fill.A)
	cb := float32(fill.B * fill.A)
	ca := float32(fill.A)

	c.verts = c.verts[:0]
	c.inds = c.inds[:0]

	vertexAt := func(r, angle float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   float32(cx + r*math.Cos(angle)),
			DstY:   float32(cy - r*math.Sin(angle)),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	if geom.InnerRadius > 0 {
		// Ring strip: one outer/inner vertex pair per arc sample.
		for i := 0; i <= steps; i++ {
			a := s.StartAngle + float64(i)*delta
			c.verts = append(c.verts, vertexAt(geom.Radius, a), vertexAt(geom.InnerRadius, a))
		}
		for i := 0; i < steps; i++ {
			v := uint16(i * 2)
			c.inds = append(c.inds,
				v, v+1, v+2,
				v+1, v+3, v+2,
			)
		}
	} else {
		// Center fan: hub vertex plus one vertex per arc sample.
		c.verts = append(c.verts, vertexAt(0, s.StartAngle))
		for i := 0; i <= steps; i++ {
			a := s.StartAngle + float64(i)*delta
			c.verts = append(c.verts, vertexAt(geom.Radius, a))
		}
		for i := 0; i < steps; i++ {
			c.inds = append(c.inds, 0, uint16(i+1), uint16(i+2))
		}
	}
}

// drawSectorBorder strokes the sector's closed outline with the chart's
// border line style.
func (c *Chart) drawSectorBorder(dst *ebiten.Image, s Slice) {
	c.appendSectorOutline(s)
	c.strokeLoop(dst, c.outline, c.borderStyle)
}

// appendSectorOutline rebuilds c.outline with the sector's closed boundary
// polyline: the outer arc, then the inner arc reversed for donuts or the
// center point for pies.
func (c *Chart) appendSectorOutline(s Slice) {
	geom := c.geom
	steps := sectorSteps(s.Extent())
	delta := (s.EndAngle - s.StartAngle) / float64(steps)
	cx, cy := sectorOrigin(s, geom)

	c.outline = c.outline[:0]

	// Outer arc, start to end.
	for i := 0; i <= steps; i++ {
		a := s.StartAngle + float64(i)*delta
		c.outline = append(c.outline, Vec2{
			X: cx + geom.Radius*math.Cos(a),
			Y: cy - geom.Radius*math.Sin(a),
		})
	}
	if geom.InnerRadius > 0 {
		// Inner arc, end back to start.
		for i := steps; i >= 0; i-- {
			a := s.StartAngle + float64(i)*delta
			c.outline = append(c.outline, Vec2{
				X: cx + geom.InnerRadius*math.Cos(a),
				Y: cy - geom.InnerRadius*math.Sin(a),
			})
		}
	} else {
		c.outline = append(c.outline, Vec2{X: cx, Y: cy})
	}
}

// strokeLoop draws a closed polyline as a constant-width ribbon mesh: each
// point is extruded ±width/2 along the averaged normals of its adjacent
// segments (miter, clamped to 2x to avoid spikes at the sharp wedge
// corners).
func (c *Chart) strokeLoop(dst *ebiten.Image, pts []Vec2, style LineStyle) {
	n := len(pts)
	if n < 3 {
		return
	}

	halfW := style.Width / 2
	cr := float32(style.Color.R * style.Color.A)
	cg := float32(style.Color.G * style.Color.A)
	cb := float32(style.Color.B * style.Color.A)
	ca := float32(style.Color.A)

	c.verts = c.verts[:0]
	c.inds = c.inds[:0]

	for i := 0; i < n; i++ {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]

		nx0, ny0 := segmentNormal(prev, cur)
		nx1, ny1 := segmentNormal(cur, next)
		nx, ny := nx0+nx1, ny0+ny1
		ln := math.Hypot(nx, ny)
		if ln > 1e-10 {
			nx /= ln
			ny /= ln
		} else {
			nx, ny = nx1, ny1
		}
		if dot := nx0*nx + ny0*ny; dot > 0.1 {
			// Scale to maintain width at the miter, clamped.
			scale := 1.0 / dot
			if scale > 2.0 {
				scale = 2.0
			}
			nx *= scale
			ny *= scale
		}

		c.verts = append(c.verts,
			ebiten.Vertex{
				DstX: float32(cur.X + nx*halfW), DstY: float32(cur.Y + ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(cur.X - nx*halfW), DstY: float32(cur.Y - ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}

	for i := 0; i < n; i++ {
		v := uint16(i * 2)
		w := uint16(((i + 1) % n) * 2)
		c.inds = append(c.inds,
			v, v+1, w,
			v+1, w+1, w,
		)
	}

	var triOp ebiten.DrawTrianglesOptions
	dst.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &triOp)
}

// segmentNormal returns the unit left-perpendicular of the segment a→b.
func segmentNormal(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Hypot(dx, dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
