package shape

import (
	"math"

	"github.com/restimel/insideCube/engine/vec"
)

// Mark selects what a Placement draws.
type Mark uint8

const (
	// MarkSlot is a solid inset painted with the face's stroke color.
	MarkSlot Mark = iota
	// MarkText draws Placement.Detail with the face's stroke color.
	MarkText
	// MarkRect is an unfilled rect stroked with Placement.Detail, or the face's stroke.
	MarkRect
)

func (m Mark) String() string {
	switch m {
	case MarkSlot:
		return "slot"
	case MarkText:
		return "text"
	case MarkRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Placement asks for a decoration on a face. Position, Width and Height are fractions of the
// face: Position and Height along its height axis, Width along its width axis.
type Placement struct {
	Position float64
	Width    float64
	Height   float64
	Kind     Mark
	Detail   string
	Reverse  bool
}

type face struct {
	origin vec.Vertex
	w, h   float64
	dir    vec.Direction
}

func newFace(a, b vec.Vertex) face {
	w, h, dir := vec.WidthHeight(a, b)
	return face{origin: a, w: w, h: h, dir: dir}
}

// box returns the corners of the placement area. It is centered on the width axis and centered
// on Position along the height axis. Its size and position are clamped inside the face.
func (f face) box(p Placement) (vec.Vertex, vec.Vertex) {
	cHeight := math.Min(f.h*p.Height, f.h)
	cWidth := math.Min(f.w*p.Width, f.w)
	top := math.Max(0, math.Min(f.h-cHeight, f.h*p.Position-cHeight/2))
	bottom := top + cHeight
	left := (f.w - cWidth) / 2
	right := left + cWidth

	return f.dir.Place(f.origin, left, top), f.dir.Place(f.origin, right, bottom)
}

// build returns false for unknown marks.
func (p Placement) build(f face, stroke string) (Shape, bool) {
	a, b := f.box(p)
	switch p.Kind {
	case MarkSlot:
		return NewRect(a, b, stroke, Transparent, false), true
	case MarkText:
		return NewText(p.Detail, a, b, stroke, None, p.Reverse), true
	case MarkRect:
		outline := p.Detail
		if outline == "" {
			outline = stroke
		}
		return NewRect(a, b, Transparent, outline, false), true
	default:
		return nil, false
	}
}
