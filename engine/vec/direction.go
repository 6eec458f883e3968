package vec

// Direction names the two axes a face varies along. The first letter is the width axis, the
// second the height axis.
type Direction uint8

const (
	XY Direction = iota
	XZ
	YX
	YZ
	ZX
	ZY
)

// String returns the lower-case axis pair, e.g. "xz".
func (d Direction) String() string {
	switch d {
	case XY:
		return "xy"
	case XZ:
		return "xz"
	case YX:
		return "yx"
	case YZ:
		return "yz"
	case ZX:
		return "zx"
	case ZY:
		return "zy"
	default:
		return "unknown"
	}
}

// Place offsets origin by along on the width axis and by across on the height axis. The third
// axis keeps the origin's coordinate.
func (d Direction) Place(origin Vertex, along, across float64) Vertex {
	switch d {
	case XZ:
		return Vertex{origin.X + along, origin.Y, origin.Z + across}
	case YX:
		return Vertex{origin.X + across, origin.Y + along, origin.Z}
	case YZ:
		return Vertex{origin.X, origin.Y + along, origin.Z + across}
	case ZX:
		return Vertex{origin.X + across, origin.Y, origin.Z + along}
	case ZY:
		return Vertex{origin.X, origin.Y + across, origin.Z + along}
	default:
		return Vertex{origin.X + along, origin.Y + across, origin.Z}
	}
}
