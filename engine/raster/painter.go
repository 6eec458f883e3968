// Package raster paints depth-sorted projections into pixel targets.
//
// Faces are drawn in the order the projection engine returns them (painter's algorithm); no
// depth buffer is used. Decorations are painted right after their face.
package raster

import (
	"math"

	"github.com/restimel/insideCube/engine/projection"
	"github.com/restimel/insideCube/engine/shape"
	"github.com/restimel/insideCube/engine/vec"
)

// Viewport maps projected coordinates to pixels: screen = p*Scale + Offset.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func (v Viewport) toScreen(p vec.Point) (x, y int) {
	return int(math.Round(p.X*v.Scale + v.OffsetX)), int(math.Round(p.Y*v.Scale + v.OffsetY))
}

// Centered returns a viewport with the projected origin at the middle of a w x h target.
func Centered(w, h int, scale float64) Viewport {
	return Viewport{Scale: scale, OffsetX: float64(w-1) / 2, OffsetY: float64(h-1) / 2}
}

// Bounds returns the union of the boxes of projs. ok is false when no projection has a finite box.
func Bounds(projs []projection.Projection) (box [2]vec.Point, ok bool) {
	box = [2]vec.Point{
		{X: math.Inf(1), Y: math.Inf(1)},
		{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range projs {
		b := p.Bounds()
		if b[0].X > b[1].X || b[0].Y > b[1].Y {
			continue
		}
		box[0].X = math.Min(box[0].X, b[0].X)
		box[0].Y = math.Min(box[0].Y, b[0].Y)
		box[1].X = math.Max(box[1].X, b[1].X)
		box[1].Y = math.Max(box[1].Y, b[1].Y)
		ok = true
	}
	return box, ok
}

// Fit returns the viewport that fits projs inside a w x h target with margin pixels on each side,
// keeping the aspect ratio.
func Fit(projs []projection.Projection, w, h, margin int) Viewport {
	box, ok := Bounds(projs)
	if !ok {
		return Centered(w, h, 1)
	}
	availW := float64(w - 1 - 2*margin)
	availH := float64(h - 1 - 2*margin)
	bw := box[1].X - box[0].X
	bh := box[1].Y - box[0].Y

	scale := math.Inf(1)
	if bw > 0 {
		scale = availW / bw
	}
	if bh > 0 {
		scale = math.Min(scale, availH/bh)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}
	cx := (box[0].X + box[1].X) / 2
	cy := (box[0].Y + box[1].Y) / 2
	return Viewport{
		Scale:   scale,
		OffsetX: float64(w-1)/2 - cx*scale,
		OffsetY: float64(h-1)/2 - cy*scale,
	}
}

// Painter draws projections. Create it once and reuse it.
type Painter struct {
	View       Viewport
	Background Color

	// Shade is the brightness at the bottom of a gradient face; the top keeps full brightness.
	Shade float64
}

// NewPainter returns a painter using view, a black background and the cube darken factor as
// gradient shade.
func NewPainter(view Viewport) *Painter {
	return &Painter{
		View:       view,
		Background: RGB(0, 0, 0),
		Shade:      shape.DarkenFactor,
	}
}

// Render clears t and paints projs in order.
func (p *Painter) Render(t Target, projs []projection.Projection) {
	if p == nil || t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(p.Background)
	p.Paint(t, projs)
}

// Paint draws projs over the current content of t.
func (p *Painter) Paint(t Target, projs []projection.Projection) {
	for _, pr := range projs {
		switch pr := pr.(type) {
		case *projection.RectProjection:
			p.paintRect(t, pr)
		case *projection.TextProjection:
			p.paintText(t, pr)
		}
	}
}

func (p *Painter) paintRect(t Target, r *projection.RectProjection) {
	pts := make([][2]int, len(r.Points))
	for i, pt := range r.Points {
		x, y := p.View.toScreen(pt)
		pts[i] = [2]int{x, y}
	}

	if fill, ok := ParseColor(r.Fill); ok && len(pts) >= 3 {
		shade := func(x, y int) Color { return fill }
		if r.Gradient {
			_, top := p.View.toScreen(r.Box[0])
			_, bottom := p.View.toScreen(r.Box[1])
			shade = p.gradient(fill, top, bottom)
		}
		// The loop repeats its first corner; fan the distinct corners into triangles.
		n := len(pts)
		if n > 3 && pts[n-1] == pts[0] {
			n--
		}
		for i := 1; i+1 < n; i++ {
			fillTriangle(t, pts[0], pts[i], pts[i+1], shade)
		}
	}

	if stroke, ok := ParseColor(r.Stroke); ok {
		for i := 0; i+1 < len(pts); i++ {
			drawLine(t, pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1], stroke)
		}
	}

	p.Paint(t, r.Decorations)
}

func (p *Painter) paintText(t Target, tx *projection.TextProjection) {
	ink, ok := ParseColor(tx.Fill)
	if !ok {
		if ink, ok = ParseColor(tx.Stroke); !ok {
			return
		}
	}
	for _, g := range tx.Glyphs {
		for i := 0; i+1 < len(g); i++ {
			x0, y0 := p.View.toScreen(g[i])
			x1, y1 := p.View.toScreen(g[i+1])
			drawLine(t, x0, y0, x1, y1, ink)
		}
		if len(g) == 1 {
			x, y := p.View.toScreen(g[0])
			t.SetPixel(x, y, ink)
		}
	}
}

func (p *Painter) gradient(c Color, top, bottom int) func(x, y int) Color {
	span := float64(bottom - top)
	return func(_, y int) Color {
		if span <= 0 {
			return c
		}
		f := float64(y-top) / span
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return c.MulScalar(1 - (1-p.Shade)*f)
	}
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle fills the pixels whose centers lie inside a, b, c, whatever their winding.
func fillTriangle(t Target, a, b, c [2]int, shade func(x, y int) Color) {
	w, h := t.Size()
	area := edgeFn(a, b, c)
	if area == 0 {
		return
	}
	if area < 0 {
		b, c = c, b
	}

	minX, maxX := min(a[0], b[0], c[0]), max(a[0], b[0], c[0])
	minY, maxY := min(a[1], b[1], c[1]), max(a[1], b[1], c[1])
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := [2]int{x, y}
			if (edgeFn(b, c, p) | edgeFn(c, a, p) | edgeFn(a, b, p)) < 0 {
				continue
			}
			t.SetPixel(x, y, shade(x, y))
		}
	}
}

func edgeFn(a, b, p [2]int) int {
	return (p[0]-a[0])*(b[1]-a[1]) - (p[1]-a[1])*(b[0]-a[0])
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
