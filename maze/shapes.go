package maze

import (
	"fmt"

	"github.com/restimel/insideCube/engine/shape"
	"github.com/restimel/insideCube/engine/vec"
)

// Style holds the colors used by Shapes. Empty fields are derived from the cube color.
type Style struct {
	Floor  string
	Wall   string
	Pin    string
	Stroke string
}

const (
	pinColor    = "#c0c0c0"
	strokeColor = "#000000"
	pinSize     = 0.2
	pinHeight   = 0.3
)

func (s Style) resolve(cube string) (Style, error) {
	if s.Floor == "" {
		s.Floor = cube
	}
	if s.Wall == "" {
		wall, err := shape.Darken(s.Floor)
		if err != nil {
			return s, fmt.Errorf("maze color: %w", err)
		}
		s.Wall = wall
	}
	if s.Pin == "" {
		s.Pin = pinColor
	}
	if s.Stroke == "" {
		s.Stroke = strokeColor
	}
	return s, nil
}

// Shapes builds the scene of c centered on the origin, one unit per cell. The column runs along
// x, the level along y (level 0 on top) and the row along z.
//
// Every cell gets a floor rect at the bottom of its level, decorated with a slot for holes, "S"
// and "E" for the start and end cells, and a rect mark under pins. Closed sides and the outer
// border become wall rects; a lid closes the top of its level and pins are small cubes.
func Shapes(c Cube, style Style) ([]shape.Shape, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	st, err := style.resolve(c.Color)
	if err != nil {
		return nil, err
	}

	d := c.Dimensions()
	origin := vec.V(-float64(d.Cells)/2, -float64(d.Levels)/2, -float64(d.Rows)/2)
	at := func(col, level, row float64) vec.Vertex {
		return origin.Add(vec.V(col, level, row))
	}

	var out []shape.Shape
	for l, level := range c.Levels {
		top, bottom := float64(l), float64(l+1)
		for r, row := range level.Cells {
			z0, z1 := float64(r), float64(r+1)
			for i, cell := range row {
				x0, x1 := float64(i), float64(i+1)
				pos := Position{X: i, Y: r, Z: l}

				out = append(out, shape.NewRect(at(x0, bottom, z0), at(x1, bottom, z1), st.Floor, st.Stroke, false,
					floorMarks(c, pos, cell)...))

				if !cell.Right || i == d.Cells-1 {
					out = append(out, shape.NewRect(at(x1, top, z0), at(x1, bottom, z1), st.Wall, st.Stroke, true))
				}
				if !cell.Down || r == d.Rows-1 {
					out = append(out, shape.NewRect(at(x0, top, z1), at(x1, bottom, z1), st.Wall, st.Stroke, true))
				}
				if i == 0 {
					out = append(out, shape.NewRect(at(x0, top, z0), at(x0, bottom, z1), st.Wall, st.Stroke, true))
				}
				if r == 0 {
					out = append(out, shape.NewRect(at(x0, top, z0), at(x1, bottom, z0), st.Wall, st.Stroke, true))
				}

				if cell.Special == PinInside || cell.Special == PinUnder {
					y := bottom - pinHeight/2
					if cell.Special == PinUnder {
						y = bottom + pinHeight/2
					}
					pin, err := shape.NewCube(at(x0+0.5, y, z0+0.5), vec.V(pinSize, pinHeight, pinSize), st.Pin, st.Stroke, shape.Faces{})
					if err != nil {
						return nil, fmt.Errorf("pin at %v: %w", pos, err)
					}
					out = append(out, pin...)
				}
			}
		}
		if level.Lid {
			out = append(out, shape.NewRect(at(0, top, 0), at(float64(d.Cells), top, float64(d.Rows)), shape.Transparent, st.Stroke, false))
		}
	}
	return out, nil
}

func floorMarks(c Cube, pos Position, cell Cell) []shape.Placement {
	var marks []shape.Placement
	if cell.Bottom {
		marks = append(marks, shape.Placement{Position: 0.5, Width: 0.6, Height: 0.6, Kind: shape.MarkSlot})
	}
	if cell.Special != 0 {
		marks = append(marks, shape.Placement{Position: 0.5, Width: 0.3, Height: 0.3, Kind: shape.MarkRect})
	}
	switch pos {
	case c.Start:
		marks = append(marks, shape.Placement{Position: 0.5, Width: 0.8, Height: 0.8, Kind: shape.MarkText, Detail: "S"})
	case c.End:
		marks = append(marks, shape.Placement{Position: 0.5, Width: 0.8, Height: 0.8, Kind: shape.MarkText, Detail: "E"})
	}
	return marks
}
