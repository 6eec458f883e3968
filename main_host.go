package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/restimel/insideCube/app"
	"github.com/restimel/insideCube/hal"
	"github.com/restimel/insideCube/internal/buildinfo"
)

func main() {
	var cfg app.Config
	var host hal.HostConfig
	var headless hal.HeadlessConfig
	var (
		cubePath = flag.String("cube", "", "Maze cube file (.json, .yaml); empty shows a demo cube.")
		empty    = flag.String("empty", "", "Show an empty maze of levels x rows x cells (e.g. 3x5x5) instead of -cube.")
		noWindow = flag.Bool("headless", false, "Run without a window.")
		logLevel = flag.String("log-level", "info", "debug|info|warn|error.")
		version  = flag.Bool("version", false, "Print version and exit.")
	)
	flag.Float64Var(&cfg.Scale, "scale", 0, "Pixels per scene unit (0 = fit the window).")
	flag.Float64Var(&cfg.Step, "step", 0.2, "Rotation per key press, in radians.")
	flag.Float64Var(&cfg.RX, "rx", -0.5, "Initial rotation around x.")
	flag.Float64Var(&cfg.RY, "ry", 0.6, "Initial rotation around y.")
	flag.Float64Var(&cfg.RZ, "rz", 0, "Initial rotation around z.")
	flag.StringVar(&cfg.Background, "bg", "#101010", "Background color.")
	flag.BoolVar(&cfg.HUD, "hud", true, "Show the scene name and angles.")
	flag.IntVar(&host.Width, "width", 320, "Framebuffer width.")
	flag.IntVar(&host.Height, "height", 320, "Framebuffer height.")
	flag.IntVar(&host.Zoom, "zoom", 2, "Window pixels per framebuffer pixel.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Long("insidecube"))
		return
	}

	logger, err := hal.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var scene app.Scene
	if *empty != "" {
		scene, err = app.EmptyMazeScene(*empty)
	} else {
		scene, err = app.LoadScene(*cubePath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	newApp := func(h hal.HAL) (func() error, error) {
		a, err := app.New(h, scene, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}

	if *noWindow {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, headless, logger, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	host.Title = "insideCube " + scene.Name + " (" + buildinfo.Short() + ")"
	err = hal.RunWindow(host, logger, newApp)
	if err != nil && !errors.Is(err, hal.ErrStop) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
