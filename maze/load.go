package maze

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Load for files that are neither JSON nor YAML.
var ErrUnknownFormat = errors.New("maze: unknown file format")

// file mirrors the stored cube layout. Flags may be written as true or 1 and positions as
// [row, column, level] or {x, y, z}.
type file struct {
	Name   string      `yaml:"name"`
	Color  string      `yaml:"color"`
	Levels []fileLevel `yaml:"levels"`
	Ghost  []filePos   `yaml:"ghost"`
	Start  *filePos    `yaml:"start"`
	End    *filePos    `yaml:"end"`
}

type fileLevel struct {
	Name    string       `yaml:"name"`
	Comment string       `yaml:"cmt"`
	Cells   [][]fileCell `yaml:"cells"`
	Lid     bit          `yaml:"lid"`
}

type fileCell struct {
	R bit `yaml:"r"`
	D bit `yaml:"d"`
	B bit `yaml:"b"`
	S int `yaml:"s"`
}

type bit bool

func (b *bit) UnmarshalYAML(n *yaml.Node) error {
	switch n.Tag {
	case "!!null":
		*b = false
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return err
		}
		*b = bit(v)
	case "!!int":
		var v int
		if err := n.Decode(&v); err != nil {
			return err
		}
		*b = v != 0
	default:
		return fmt.Errorf("line %d: flag must be a boolean or 0/1, got %q", n.Line, n.Value)
	}
	return nil
}

type filePos Position

func (p *filePos) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var v []int
		if err := n.Decode(&v); err != nil {
			return err
		}
		if len(v) != 3 {
			return fmt.Errorf("line %d: position needs [row, column, level], got %d values", n.Line, len(v))
		}
		*p = filePos{X: v[1], Y: v[0], Z: v[2]}
	case yaml.MappingNode:
		var v struct {
			X int `yaml:"x"`
			Y int `yaml:"y"`
			Z int `yaml:"z"`
		}
		if err := n.Decode(&v); err != nil {
			return err
		}
		*p = filePos{X: v.X, Y: v.Y, Z: v.Z}
	default:
		return fmt.Errorf("line %d: invalid position", n.Line)
	}
	return nil
}

// Load reads a cube from a .json, .yaml or .yml file.
func Load(path string) (Cube, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return Cube{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	f, err := os.Open(path)
	if err != nil {
		return Cube{}, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Cube{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a JSON or YAML cube and completes missing fields (see Complete).
func Decode(r io.Reader) (Cube, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return Cube{}, fmt.Errorf("decode cube: %w", err)
	}

	c := Cube{
		Name:  f.Name,
		Color: f.Color,
	}
	for _, fl := range f.Levels {
		level := Level{Name: fl.Name, Comment: fl.Comment, Lid: bool(fl.Lid)}
		level.Cells = make([][]Cell, len(fl.Cells))
		for r, row := range fl.Cells {
			level.Cells[r] = make([]Cell, len(row))
			for i, fc := range row {
				level.Cells[r][i] = Cell{Right: bool(fc.R), Down: bool(fc.D), Bottom: bool(fc.B), Special: fc.S}
			}
		}
		c.Levels = append(c.Levels, level)
	}
	for _, g := range f.Ghost {
		c.Ghost = append(c.Ghost, Position(g))
	}
	if err := c.Validate(); err != nil {
		return Cube{}, err
	}

	return Complete(c, (*Position)(f.Start), (*Position)(f.End)), nil
}

// Complete fills the defaults of a cube read from an older or simplified file: start at
// (1, 1, 0), end at the opposite inner corner of the last level, and a hex color
// (black when unset).
func Complete(c Cube, start, end *Position) Cube {
	d := c.Dimensions()
	if start != nil {
		c.Start = *start
	} else {
		c.Start = Position{X: 1, Y: 1, Z: 0}
	}
	if end != nil {
		c.End = *end
	} else {
		c.End = Position{X: d.Cells - 2, Y: d.Rows - 2, Z: d.Levels - 1}
	}
	if c.Color == "" {
		c.Color = "black"
	}
	c.Color = HexColor(c.Color)
	return c
}
