package projection

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/restimel/insideCube/engine/shape"
	"github.com/restimel/insideCube/engine/vec"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestRotateIdentity(t *testing.T) {
	for _, p := range [][2]float64{{1, 2}, {-3, 0.5}, {0, -7}, {1e-12, 4}} {
		u, v := Rotate(p[0], p[1], 0)
		if u != p[0] || v != p[1] {
			t.Fatalf("Rotate(%v, 0)=(%v,%v)", p, u, v)
		}
	}
	for _, r := range []float64{0.3, -2, math.Pi} {
		u, v := Rotate(0, 0, r)
		if u != 0 || v != 0 {
			t.Fatalf("origin moved to (%v,%v) by %v", u, v, r)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	tests := []struct {
		u, v, r float64
		wu, wv  float64
	}{
		{1, 0, math.Pi / 2, 0, 1},
		{0, 1, math.Pi / 2, -1, 0},
		{0, -1, math.Pi / 2, 1, 0},
		{-2, 0, math.Pi, 2, 0},
		{3, 4, -math.Pi / 2, 4, -3},
	}
	for _, tt := range tests {
		u, v := Rotate(tt.u, tt.v, tt.r)
		if !near(u, tt.wu) || !near(v, tt.wv) {
			t.Errorf("Rotate(%v,%v,%v)=(%v,%v) want (%v,%v)", tt.u, tt.v, tt.r, u, v, tt.wu, tt.wv)
		}
	}
}

func TestProjectVertexOrder(t *testing.T) {
	got := ProjectVertex(vec.V(1, 0, 0), 0, 0, math.Pi/2)
	if !near(got.X, 0) || !near(got.Y, -1) || got.Z != 0 {
		t.Fatalf("z turn: %v", got)
	}

	// x turn first, then y turn on the rotated point.
	got = ProjectVertex(vec.V(0, 1, 0), math.Pi/2, math.Pi/2, 0)
	if !near(got.X, 1) || !near(got.Y, 0) || !near(got.Z, 0) {
		t.Fatalf("x then y: %v", got)
	}
	got = ProjectVertex(vec.V(1, 0, 0), math.Pi/2, math.Pi/2, 0)
	if !near(got.X, 0) || !near(got.Y, 0) || !near(got.Z, 1) {
		t.Fatalf("x then y: %v", got)
	}
}

func TestProjectZeroAngleIdentity(t *testing.T) {
	rect := shape.NewRect(vec.V(-1, -2, 3), vec.V(4, 5, 3), "#ffffff", "#000000", true)
	text := shape.NewText("Bonus", vec.V(0, 0, 7), vec.V(5, 1, 7), "#000000", shape.None, false)

	out := Project([]shape.Shape{text, rect}, 0, 0, 0)
	if len(out) != 2 {
		t.Fatalf("projections=%d", len(out))
	}

	rp, ok := out[0].(*RectProjection)
	if !ok {
		t.Fatalf("first projection is %v, want rect (z=3 < z=7)", out[0].Kind())
	}
	for i, v := range rect.Points {
		if rp.Points[i] != v.XY() {
			t.Fatalf("point %d moved: %v -> %v", i, v, rp.Points[i])
		}
	}
	if rp.ZMin != 3 || rp.ZMax != 3 {
		t.Fatalf("depth=[%v,%v]", rp.ZMin, rp.ZMax)
	}
	if rp.Box != [2]vec.Point{{X: -1, Y: -2}, {X: 4, Y: 5}} {
		t.Fatalf("box=%v", rp.Box)
	}
	if !rp.Gradient || rp.Fill != "#ffffff" || rp.Stroke != "#000000" {
		t.Fatalf("paint lost: %+v", rp)
	}

	tp := out[1].(*TextProjection)
	if len(tp.Glyphs) != len(text.Glyphs) {
		t.Fatalf("glyphs=%d", len(tp.Glyphs))
	}
	for i := range text.Glyphs {
		for j, v := range text.Glyphs[i] {
			if tp.Glyphs[i][j] != v.XY() {
				t.Fatalf("glyph %d point %d moved", i, j)
			}
		}
	}
	if tp.ZMin != 7 || tp.ZMax != 7 {
		t.Fatalf("text depth=[%v,%v]", tp.ZMin, tp.ZMax)
	}
}

func TestProjectDepthSort(t *testing.T) {
	// Faces in x-constant planes spanning the given z ranges.
	mk := func(z0, z1 float64, fill string) shape.Shape {
		return shape.NewRect(vec.V(0, 0, z0), vec.V(0, 1, z1), fill, "#000000", false)
	}
	shapes := []shape.Shape{mk(0, 1, "#000001"), mk(-1, 0, "#000002"), mk(2, 3, "#000003")}

	out := Project(shapes, 0, 0, 0)
	want := []string{"#000002", "#000001", "#000003"}
	for i, p := range out {
		rp := p.(*RectProjection)
		if rp.Fill != want[i] {
			t.Fatalf("order[%d]=%s want %s", i, rp.Fill, want[i])
		}
	}
	zMin, zMax := out[0].Depth()
	if zMin != -1 || zMax != 0 {
		t.Fatalf("first depth=[%v,%v]", zMin, zMax)
	}
}

func TestProjectStableTies(t *testing.T) {
	var shapes []shape.Shape
	for i := 0; i < 8; i++ {
		shapes = append(shapes, shape.NewRect(vec.V(float64(i), 0, 1), vec.V(float64(i)+1, 1, 1), "#ffffff", "#000000", false))
	}
	out := Project(shapes, 0, 0, 0)
	for i, p := range out {
		if p.Bounds()[0].X != float64(i) {
			t.Fatalf("tie order broken at %d: %v", i, p.Bounds())
		}
	}
}

func TestProjectDecorationInsideParent(t *testing.T) {
	rect := shape.NewRect(vec.V(0, 0, 0), vec.V(4, 2, 0), "#ffffff", "#000000", false,
		shape.Placement{Position: 0.5, Width: 1, Height: 1, Kind: shape.MarkSlot})

	out := Project([]shape.Shape{rect}, 0, 0, 0)
	parent := out[0].(*RectProjection)
	if len(parent.Decorations) != 1 {
		t.Fatalf("decorations=%d", len(parent.Decorations))
	}
	pb := parent.Box
	db := parent.Decorations[0].Bounds()
	if db[0].X < pb[0].X || db[0].Y < pb[0].Y || db[1].X > pb[1].X || db[1].Y > pb[1].Y {
		t.Fatalf("decoration %v escapes parent %v", db, pb)
	}
	if !near(db[0].X+db[1].X, pb[0].X+pb[1].X) || !near(db[0].Y+db[1].Y, pb[0].Y+pb[1].Y) {
		t.Fatalf("decoration %v not centered in %v", db, pb)
	}
}

func TestProjectDecorationDepthIndependent(t *testing.T) {
	parent := shape.NewRect(vec.V(0, 0, 0), vec.V(1, 1, 0), "#ffffff", "#000000", false)
	parent.Decorations = []shape.Shape{
		shape.NewRect(vec.V(0, 0, 5), vec.V(1, 1, 5), "#000000", shape.Transparent, false),
		shape.NewRect(vec.V(0, 0, -5), vec.V(1, 1, -5), "#000000", shape.Transparent, false),
	}
	out := Project([]shape.Shape{parent}, 0, 0, 0)
	rp := out[0].(*RectProjection)
	if rp.ZMin != 0 || rp.ZMax != 0 {
		t.Fatalf("decorations widened parent depth to [%v,%v]", rp.ZMin, rp.ZMax)
	}
	if z, _ := rp.Decorations[0].Depth(); z != -5 {
		t.Fatalf("decorations not sorted: first zMin=%v", z)
	}
}

func TestProjectEmptyTextSortsLast(t *testing.T) {
	empty := shape.NewText("??", vec.V(0, 0, 0), vec.V(2, 1, 0), "#000000", shape.None, false)
	rect := shape.NewRect(vec.V(0, 0, 9), vec.V(1, 1, 9), "#ffffff", "#000000", false)
	out := Project([]shape.Shape{empty, rect}, 0.4, 0.2, 0.1)
	if out[0].Kind() != shape.KindRect {
		t.Fatalf("empty text sorted before rect")
	}
	if z, _ := out[1].Depth(); !math.IsInf(z, 1) {
		t.Fatalf("empty text zMin=%v", z)
	}
}

func TestProjectDeterministicConcurrent(t *testing.T) {
	shapes, err := shape.NewCube(vec.V(0, 0, 0), vec.V(2, 2, 2), "#3060e0", "#000000", shape.Faces{
		Front: []shape.Placement{{Position: 0.5, Width: 0.8, Height: 0.5, Kind: shape.MarkText, Detail: "DOMINO"}},
		Top:   []shape.Placement{{Position: 0.5, Width: 0.3, Height: 0.3, Kind: shape.MarkSlot}},
	})
	if err != nil {
		t.Fatalf("NewCube: %v", err)
	}
	want := Project(shapes, 0.3, -0.7, 1.1)

	var wg sync.WaitGroup
	results := make([][]Projection, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Project(shapes, 0.3, -0.7, 1.1)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestProjectRotationKeepsDistances(t *testing.T) {
	// A face centered on the origin keeps its corner distances under any rotation.
	rect := shape.NewRect(vec.V(-1, -1, 0), vec.V(1, 1, 0), "#ffffff", "#000000", false)
	for _, a := range [][3]float64{{0.5, 0, 0}, {0, 1.2, 0}, {0.4, 0.9, -2.1}} {
		for _, v := range rect.Points {
			p := ProjectVertex(v, a[0], a[1], a[2])
			if !near(p.X*p.X+p.Y*p.Y+p.Z*p.Z, 2) {
				t.Fatalf("angles %v moved %v off the sphere: %v", a, v, p)
			}
		}
	}
}

func TestProjectPointerShapes(t *testing.T) {
	rect := shape.NewRect(vec.V(0, 0, 1), vec.V(2, 2, 1), "#ffffff", "#000000", false)
	text := shape.NewText("Bo", vec.V(0, 0, 4), vec.V(2, 1, 4), "#000000", shape.None, false)
	var nilRect *shape.Rect

	out := Project([]shape.Shape{&text, nil, &rect, nilRect}, 0, 0, 0)
	if len(out) != 2 {
		t.Fatalf("projections=%d, want 2", len(out))
	}
	byValue := Project([]shape.Shape{text, rect}, 0, 0, 0)
	if !reflect.DeepEqual(out, byValue) {
		t.Fatalf("pointer shapes project differently from values")
	}
}
