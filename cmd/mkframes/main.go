package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/restimel/insideCube/app"
	"github.com/restimel/insideCube/engine/projection"
	"github.com/restimel/insideCube/engine/raster"
	"github.com/restimel/insideCube/internal/buildinfo"
)

const frameMargin = 4

type options struct {
	out     string
	frames  int
	size    int
	rx, rz  float64
	bg      string
	workers int
	// fit frames every image to its own projected bounds instead of one scale for the turn.
	fit bool
}

func main() {
	var (
		cubePath = flag.String("cube", "", "Maze cube file (.json, .yaml); empty renders the demo cube.")
		empty    = flag.String("empty", "", "Render an empty maze of levels x rows x cells (e.g. 3x5x5) instead of -cube.")
		version  = flag.Bool("version", false, "Print version and exit.")
		opts     options
	)
	flag.StringVar(&opts.out, "out", "frames", "Output directory.")
	flag.IntVar(&opts.frames, "frames", 36, "Frames per turn.")
	flag.IntVar(&opts.size, "size", 256, "Frame width and height in pixels.")
	flag.Float64Var(&opts.rx, "rx", -0.5, "Rotation around x.")
	flag.Float64Var(&opts.rz, "rz", 0, "Rotation around z.")
	flag.StringVar(&opts.bg, "bg", "#101010", "Background color.")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Frames rendered concurrently.")
	flag.BoolVar(&opts.fit, "fit", false, "Fit each frame to its own bounds.")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Long("mkframes"))
		return
	}
	if opts.frames <= 0 || opts.size <= 0 {
		fatalf("usage: mkframes [-cube maze.json] [-out dir] [-frames N] [-size px] [-rx a] [-rz a] [-workers N]")
	}

	var scene app.Scene
	var err error
	if *empty != "" {
		scene, err = app.EmptyMazeScene(*empty)
	} else {
		scene, err = app.LoadScene(*cubePath)
	}
	if err != nil {
		fatalf("load: %v", err)
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		fatalf("out: %v", err)
	}
	if err := render(context.Background(), scene, opts); err != nil {
		fatalf("render: %v", err)
	}
	fmt.Printf("%d frames of %q written to %s\n", opts.frames, scene.Name, opts.out)
}

// render writes one PNG per frame; frame i is turned by 2*pi*i/frames around y.
func render(ctx context.Context, scene app.Scene, opts options) error {
	bg, ok := raster.ParseColor(opts.bg)
	if !ok {
		return fmt.Errorf("invalid background %q", opts.bg)
	}
	scale := app.FitScale(scene.Shapes, opts.size, opts.size, frameMargin)

	g, ctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		g.SetLimit(opts.workers)
	}
	for i := 0; i < opts.frames; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ry := 2 * math.Pi * float64(i) / float64(opts.frames)
			projs := projection.Project(scene.Shapes, opts.rx, ry, opts.rz)

			view := raster.Centered(opts.size, opts.size, scale)
			if opts.fit {
				view = raster.Fit(projs, opts.size, opts.size, frameMargin)
			}
			target := raster.NewImageTarget(opts.size, opts.size)
			p := raster.NewPainter(view)
			p.Background = bg
			p.Render(target, projs)

			return writePNG(filepath.Join(opts.out, fmt.Sprintf("frame_%03d.png", i)), target)
		})
	}
	return g.Wait()
}

func writePNG(path string, t *raster.ImageTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, t.Img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
