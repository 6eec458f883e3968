// Package shape builds the faces, cuboids and text decorations fed to the projection engine.
package shape

import (
	"github.com/restimel/insideCube/engine/glyph"
	"github.com/restimel/insideCube/engine/vec"
)

// Paint values understood by renderers besides "#rrggbb".
const (
	Transparent = "transparent"
	None        = "none"
)

// Kind tags the two shape variants.
type Kind uint8

const (
	KindRect Kind = iota + 1
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Shape is either a Rect or a Text. The set is closed.
type Shape interface {
	Kind() Kind
	sealed()
}

// Rect is a planar face: four corners closing back on the first.
type Rect struct {
	Fill     string
	Stroke   string
	Points   [5]vec.Vertex
	Gradient bool

	// Decorations are owned by the rect and drawn on top of it.
	Decorations []Shape
}

func (Rect) Kind() Kind { return KindRect }
func (Rect) sealed()    {}

// Text is a string of stroked glyph paths fitted into Box.
type Text struct {
	Fill   string
	Stroke string
	Box    [2]vec.Vertex
	Glyphs [][]vec.Vertex
}

func (Text) Kind() Kind { return KindText }
func (Text) sealed()    {}

// NewText fits s into the box spanned by a and b.
func NewText(s string, a, b vec.Vertex, fill, stroke string, reverse bool) Text {
	box := [2]vec.Vertex{a, b}
	return Text{
		Fill:   fill,
		Stroke: stroke,
		Box:    box,
		Glyphs: glyph.DrawString(s, box, reverse),
	}
}

// NewRect builds the face spanned by the opposite corners a and b and its decorations.
//
// The depth of the two other corners depends on which coordinate is constant: y first, then x,
// otherwise both copy a.Z.
func NewRect(a, b vec.Vertex, fill, stroke string, gradient bool, decorations ...Placement) Rect {
	var z3, z4 float64
	switch {
	case a.Y == b.Y:
		z3, z4 = a.Z, b.Z
	case a.X == b.X:
		z3, z4 = b.Z, a.Z
	default:
		z3, z4 = a.Z, a.Z
	}

	r := Rect{
		Fill:   fill,
		Stroke: stroke,
		Points: [5]vec.Vertex{
			a,
			{X: b.X, Y: a.Y, Z: z3},
			b,
			{X: a.X, Y: b.Y, Z: z4},
			a,
		},
		Gradient: gradient,
	}

	if len(decorations) == 0 {
		return r
	}
	f := newFace(a, b)
	r.Decorations = make([]Shape, 0, len(decorations))
	for _, d := range decorations {
		if s, ok := d.build(f, stroke); ok {
			r.Decorations = append(r.Decorations, s)
		}
	}
	return r
}
