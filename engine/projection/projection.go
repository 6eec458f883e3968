// Package projection rotates shape trees and orders them for painting.
//
// Projection is orthographic: after rotation the x and y coordinates are the drawing surface
// coordinates and z is only kept as a depth range for sorting.
package projection

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/restimel/insideCube/engine/shape"
	"github.com/restimel/insideCube/engine/vec"
)

// Projection is a projected shape: *RectProjection or *TextProjection.
type Projection interface {
	Kind() shape.Kind
	// Bounds is the 2D bounding box of the shape's own points.
	Bounds() [2]vec.Point
	// Depth is the range of rotated z over the shape's own points.
	Depth() (zMin, zMax float64)
	sealed()
}

// RectProjection is a projected shape.Rect.
type RectProjection struct {
	Fill     string
	Stroke   string
	Gradient bool
	Points   []vec.Point
	Box      [2]vec.Point
	ZMin     float64
	ZMax     float64

	// Decorations are sorted like the top-level result. Their depth does not widen the parent's.
	Decorations []Projection
}

func (*RectProjection) Kind() shape.Kind              { return shape.KindRect }
func (p *RectProjection) Bounds() [2]vec.Point        { return p.Box }
func (p *RectProjection) Depth() (zMin, zMax float64) { return p.ZMin, p.ZMax }
func (*RectProjection) sealed()                       {}

// TextProjection is a projected shape.Text, one point list per glyph.
type TextProjection struct {
	Fill   string
	Stroke string
	Glyphs [][]vec.Point
	Box    [2]vec.Point
	ZMin   float64
	ZMax   float64
}

func (*TextProjection) Kind() shape.Kind              { return shape.KindText }
func (p *TextProjection) Bounds() [2]vec.Point        { return p.Box }
func (p *TextProjection) Depth() (zMin, zMax float64) { return p.ZMin, p.ZMax }
func (*TextProjection) sealed()                       {}

// extent accumulates the bounding box and depth range of projected vertices.
type extent struct {
	xMin, xMax float64
	yMin, yMax float64
	zMin, zMax float64
}

func newExtent() extent {
	inf := math.Inf(1)
	return extent{xMin: inf, xMax: -inf, yMin: inf, yMax: -inf, zMin: inf, zMax: -inf}
}

func (e *extent) add(v vec.Vertex) {
	e.xMin = math.Min(e.xMin, v.X)
	e.xMax = math.Max(e.xMax, v.X)
	e.yMin = math.Min(e.yMin, v.Y)
	e.yMax = math.Max(e.yMax, v.Y)
	e.zMin = math.Min(e.zMin, v.Z)
	e.zMax = math.Max(e.zMax, v.Z)
}

func (e extent) box() [2]vec.Point {
	return [2]vec.Point{{X: e.xMin, Y: e.yMin}, {X: e.xMax, Y: e.yMax}}
}

// Project rotates every shape by the given angles (radians) and returns the projections sorted by
// ascending ZMin. Shapes with equal ZMin keep their input order. Project does not modify shapes
// and may be called concurrently. Shapes may be given by value or by pointer; nil entries are
// skipped.
func Project(shapes []shape.Shape, rx, ry, rz float64) []Projection {
	out := make([]Projection, 0, len(shapes))
	for _, s := range shapes {
		if p, ok := projectShape(s, rx, ry, rz); ok {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b Projection) int {
		za, _ := a.Depth()
		zb, _ := b.Depth()
		return cmp.Compare(za, zb)
	})
	return out
}

func projectShape(s shape.Shape, rx, ry, rz float64) (Projection, bool) {
	switch s := s.(type) {
	case nil:
		return nil, false
	case shape.Rect:
		return projectRect(s, rx, ry, rz), true
	case *shape.Rect:
		if s == nil {
			return nil, false
		}
		return projectRect(*s, rx, ry, rz), true
	case shape.Text:
		return projectText(s, rx, ry, rz), true
	case *shape.Text:
		if s == nil {
			return nil, false
		}
		return projectText(*s, rx, ry, rz), true
	default:
		panic(fmt.Sprintf("projection: unknown shape %T", s))
	}
}

func projectRect(r shape.Rect, rx, ry, rz float64) *RectProjection {
	e := newExtent()
	points := make([]vec.Point, len(r.Points))
	for i, v := range r.Points {
		p := ProjectVertex(v, rx, ry, rz)
		points[i] = p.XY()
		e.add(p)
	}

	var decorations []Projection
	if len(r.Decorations) > 0 {
		decorations = Project(r.Decorations, rx, ry, rz)
	}

	return &RectProjection{
		Fill:        r.Fill,
		Stroke:      r.Stroke,
		Gradient:    r.Gradient,
		Points:      points,
		Box:         e.box(),
		ZMin:        e.zMin,
		ZMax:        e.zMax,
		Decorations: decorations,
	}
}

func projectText(t shape.Text, rx, ry, rz float64) *TextProjection {
	e := newExtent()
	glyphs := make([][]vec.Point, len(t.Glyphs))
	for i, path := range t.Glyphs {
		pts := make([]vec.Point, len(path))
		for j, v := range path {
			p := ProjectVertex(v, rx, ry, rz)
			pts[j] = p.XY()
			e.add(p)
		}
		glyphs[i] = pts
	}

	return &TextProjection{
		Fill:   t.Fill,
		Stroke: t.Stroke,
		Glyphs: glyphs,
		Box:    e.box(),
		ZMin:   e.zMin,
		ZMax:   e.zMax,
	}
}
