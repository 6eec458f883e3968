package app

import (
	"github.com/restimel/insideCube/engine/shape"
	"github.com/restimel/insideCube/engine/vec"
	"github.com/restimel/insideCube/maze"
)

// LoadScene reads a maze cube file into a scene. An empty path gives the demo scene.
func LoadScene(path string) (Scene, error) {
	if path == "" {
		return DemoScene()
	}
	c, err := maze.Load(path)
	if err != nil {
		return Scene{}, err
	}
	shapes, err := maze.Shapes(c, maze.Style{})
	if err != nil {
		return Scene{}, err
	}
	name := c.Name
	if name == "" {
		name = path
	}
	return Scene{Name: name, Shapes: shapes}, nil
}

// EmptyMazeScene builds an empty maze of the given "levels x rows x cells" size, every cell
// closed.
func EmptyMazeScene(size string) (Scene, error) {
	d, err := maze.ParseDimensions(size)
	if err != nil {
		return Scene{}, err
	}
	shapes, err := maze.Shapes(maze.New(d), maze.Style{})
	if err != nil {
		return Scene{}, err
	}
	return Scene{Name: "empty " + size, Shapes: shapes}, nil
}

// DemoScene is a decorated cube shown when no maze file is given.
func DemoScene() (Scene, error) {
	faces := shape.Faces{
		Front: []shape.Placement{
			{Position: 0.3, Width: 0.8, Height: 0.3, Kind: shape.MarkText, Detail: "CUBE"},
			{Position: 0.75, Width: 0.3, Height: 0.3, Kind: shape.MarkSlot},
		},
		Back: []shape.Placement{
			{Position: 0.5, Width: 0.8, Height: 0.4, Kind: shape.MarkText, Detail: "CUBE", Reverse: true},
		},
		Top: []shape.Placement{
			{Position: 0.5, Width: 0.6, Height: 0.6, Kind: shape.MarkRect, Detail: "#ffffff"},
		},
		Left: []shape.Placement{
			{Position: 0.5, Width: 0.5, Height: 0.5, Kind: shape.MarkText, Detail: "IN"},
		},
		Right: []shape.Placement{
			{Position: 0.5, Width: 0.5, Height: 0.5, Kind: shape.MarkText, Detail: "ZOOM"},
		},
		Bottom: []shape.Placement{
			{Position: 0.5, Width: 0.2, Height: 0.2, Kind: shape.MarkSlot},
		},
	}
	shapes, err := shape.NewCube(vec.V(0, 0, 0), vec.V(4, 4, 4), "#ff8d1e", "#000000", faces)
	if err != nil {
		return Scene{}, err
	}
	return Scene{Name: "demo", Shapes: shapes}, nil
}
