// Package maze holds the cube maze model edited by the application and converts it into shape
// trees for the projection engine.
package maze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyCube is returned for cubes without levels, rows or cells.
	ErrEmptyCube = errors.New("maze: empty cube")
	// ErrRagged is returned when levels or rows disagree on their size.
	ErrRagged = errors.New("maze: levels have different sizes")
)

// Cell is one square of a level. The zero value is closed on every side.
type Cell struct {
	// Right is true when there is no wall on the right.
	Right bool
	// Down is true when there is no wall downside.
	Down bool
	// Bottom is true for a hole to the level below.
	Bottom bool
	// Special is PinInside, PinUnder or 0.
	Special int
}

const (
	PinInside = 2
	PinUnder  = -2
)

// Position addresses a cell: X is the column, Y the row, Z the level.
type Position struct {
	X, Y, Z int
}

type Level struct {
	Name    string
	Comment string
	Cells   [][]Cell
	Lid     bool
}

type Cube struct {
	Name   string
	Color  string
	Levels []Level
	Ghost  []Position
	Start  Position
	End    Position
}

// Dimensions counts levels, rows per level and cells per row.
type Dimensions struct {
	Levels int
	Rows   int
	Cells  int
}

// Dimensions returns the size of c as given by its first level and row.
func (c Cube) Dimensions() Dimensions {
	d := Dimensions{Levels: len(c.Levels)}
	if d.Levels > 0 {
		d.Rows = len(c.Levels[0].Cells)
		if d.Rows > 0 {
			d.Cells = len(c.Levels[0].Cells[0])
		}
	}
	return d
}

// Validate checks that c is a non-empty box.
func (c Cube) Validate() error {
	d := c.Dimensions()
	if d.Levels == 0 || d.Rows == 0 || d.Cells == 0 {
		return ErrEmptyCube
	}
	for l, level := range c.Levels {
		if len(level.Cells) != d.Rows {
			return fmt.Errorf("level %d has %d rows, want %d: %w", l, len(level.Cells), d.Rows, ErrRagged)
		}
		for r, row := range level.Cells {
			if len(row) != d.Cells {
				return fmt.Errorf("level %d row %d has %d cells, want %d: %w", l, r, len(row), d.Cells, ErrRagged)
			}
		}
	}
	return nil
}

// New returns an empty maze of the given size. The last level has a lid.
func New(d Dimensions) Cube {
	c := Cube{
		Color: "#000000",
		Start: Position{X: 1, Y: 1, Z: 0},
		End:   Position{X: d.Cells - 2, Y: d.Rows - 2, Z: d.Levels - 1},
	}
	c.Levels = make([]Level, d.Levels)
	for l := range c.Levels {
		cells := make([][]Cell, d.Rows)
		for r := range cells {
			cells[r] = make([]Cell, d.Cells)
		}
		c.Levels[l] = Level{
			Name:  fmt.Sprintf("Level %d", l+1),
			Lid:   l == d.Levels-1,
			Cells: cells,
		}
	}
	return c
}

// ParseDimensions reads "levels x rows x cells", for example "3x5x5".
func ParseDimensions(s string) (Dimensions, error) {
	var d Dimensions
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 3 {
		return d, fmt.Errorf("dimensions %q: want levels x rows x cells", s)
	}
	dst := []*int{&d.Levels, &d.Rows, &d.Cells}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return d, fmt.Errorf("dimensions %q: %w", s, err)
		}
		if n <= 0 {
			return d, fmt.Errorf("dimensions %q: %w", s, ErrEmptyCube)
		}
		*dst[i] = n
	}
	return d, nil
}

// namedColors maps the color names of older cube files to hex values.
var namedColors = map[string]string{
	"black":   "#222623",
	"blue":    "#3060e0",
	"brown":   "#8b4513",
	"crystal": "#ffffff",
	"green":   "#32cd32",
	"orange":  "#ff8d1e",
	"red":     "#ff0000",
	"yellow":  "#ffff00",
	"pink":    "#ff1493",
}

// HexColor resolves a named color; other values are returned unchanged.
func HexColor(color string) string {
	if hex, ok := namedColors[color]; ok {
		return hex
	}
	return color
}
