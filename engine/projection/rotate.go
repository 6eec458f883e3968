package projection

import (
	"math"

	"github.com/restimel/insideCube/engine/vec"
)

// Rotate turns (u, v) by r radians around the origin of its plane.
//
// A zero angle and the origin itself are returned unchanged.
func Rotate(u, v, r float64) (float64, float64) {
	if r == 0 {
		return u, v
	}
	dist := math.Sqrt(u*u + v*v)
	if dist == 0 {
		return u, v
	}

	angle := math.Acos(clampUnit(u / dist))
	if v < 0 {
		angle = -angle
	}
	return math.Cos(angle+r) * dist, math.Sin(angle+r) * dist
}

func clampUnit(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

// ProjectVertex applies the three rotations in their fixed order: z first on (y, x), then x on
// (z, y), then y on (x, z). Each step sees the output of the previous one.
func ProjectVertex(p vec.Vertex, rx, ry, rz float64) vec.Vertex {
	x, y, z := p.X, p.Y, p.Z
	y, x = Rotate(y, x, rz)
	z, y = Rotate(z, y, rx)
	x, z = Rotate(x, z, ry)
	return vec.Vertex{X: x, Y: y, Z: z}
}
