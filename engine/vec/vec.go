// Package vec holds the value types shared by the shape builder, the glyph renderer and the
// projection engine.
package vec

import "math"

// Vertex is a point in model space.
type Vertex struct {
	X, Y, Z float64
}

// Point is a 2D coordinate. Glyph outlines and projected shapes use it.
type Point struct {
	X, Y float64
}

func V(x, y, z float64) Vertex { return Vertex{X: x, Y: y, Z: z} }

func (v Vertex) Add(o Vertex) Vertex { return Vertex{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vertex) Sub(o Vertex) Vertex { return Vertex{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// XY drops the depth coordinate.
func (v Vertex) XY() Point { return Point{X: v.X, Y: v.Y} }

// MidPoint returns the component-wise average of a and b.
func MidPoint(a, b Vertex) Vertex {
	return Vertex{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}

// WidthHeight classifies the face spanned by two opposite corners.
//
// The constant axis is searched in the order y, x, z. When two deltas are zero the face is
// degenerate and the first matching branch wins: a segment along z reports XZ or ZX, never ZY.
func WidthHeight(a, b Vertex) (w, h float64, dir Direction) {
	d := b.Sub(a)
	dx, dy, dz := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)

	switch {
	case dy == 0:
		w, h = math.Max(dx, dz), math.Min(dx, dz)
		dir = XZ
		if dx < dz {
			dir = ZX
		}
	case dx == 0:
		w, h = math.Max(dy, dz), math.Min(dy, dz)
		dir = YZ
		if dy < dz {
			dir = ZY
		}
	default:
		w, h = math.Max(dx, dy), math.Min(dx, dy)
		dir = XY
		if dx < dy {
			dir = YX
		}
	}
	return w, h, dir
}
