// Package app is the interactive preview: it owns the rotation angles, re-projects the scene when
// they change and paints it into the host framebuffer.
package app

import (
	"errors"
	"fmt"
	"math"

	"github.com/restimel/insideCube/engine/projection"
	"github.com/restimel/insideCube/engine/raster"
	"github.com/restimel/insideCube/engine/shape"
	"github.com/restimel/insideCube/hal"
)

var (
	// ErrQuit is returned by HandleKey and Step when the user asks to leave.
	ErrQuit = fmt.Errorf("app: quit: %w", hal.ErrStop)
	// ErrNoDisplay is returned by New when the HAL has no RGB565 framebuffer.
	ErrNoDisplay = errors.New("app: no rgb565 framebuffer")
)

const (
	defaultStep = math.Pi / 16
	fitMargin   = 8
	zoomFactor  = 1.25
)

type Config struct {
	// Scale is the size of one scene unit in pixels; 0 fits the scene in the framebuffer.
	Scale float64
	// Step is the rotation applied per key press, in radians.
	Step       float64
	RX, RY, RZ float64
	Background string
	HUD        bool
}

// Scene is what the preview shows.
type Scene struct {
	Name   string
	Shapes []shape.Shape
}

type App struct {
	log     hal.Logger
	fb      hal.Framebuffer
	kbd     hal.Keyboard
	cfg     Config
	scene   Scene
	target  *raster.RGB565Target
	painter *raster.Painter
	hud     *hud

	rx, ry, rz float64
	scale      float64
	zoom       float64
	dirty      bool
}

// New prepares the preview of scene on h's framebuffer. Nothing is drawn until Step or Render.
func New(h hal.HAL, scene Scene, cfg Config) (*App, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil || disp.Framebuffer().Format() != hal.PixelFormatRGB565 {
		return nil, ErrNoDisplay
	}
	fb := disp.Framebuffer()
	if cfg.Step <= 0 {
		cfg.Step = defaultStep
	}

	a := &App{
		log:   h.Logger(),
		fb:    fb,
		cfg:   cfg,
		scene: scene,
		target: &raster.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		zoom:  1,
		dirty: true,
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if a.log == nil {
		a.log = hal.NopLogger()
	}

	a.painter = raster.NewPainter(raster.Centered(fb.Width(), fb.Height(), 1))
	if cfg.Background != "" {
		bg, ok := raster.ParseColor(cfg.Background)
		if !ok {
			return nil, fmt.Errorf("background %q: %w", cfg.Background, shape.ErrInvalidColor)
		}
		a.painter.Background = bg
	}
	if cfg.HUD {
		a.hud = newHUD(a.target)
	}

	a.scale = cfg.Scale
	if a.scale <= 0 {
		a.scale = FitScale(scene.Shapes, fb.Width(), fb.Height(), fitMargin)
	}
	a.reset()

	a.log.WriteLineString(fmt.Sprintf("scene %q: %d shapes, scale %.2f", scene.Name, len(scene.Shapes), a.scale))
	return a, nil
}

func (a *App) reset() {
	a.rx, a.ry, a.rz = a.cfg.RX, a.cfg.RY, a.cfg.RZ
	a.zoom = 1
	a.dirty = true
}

// Angles returns the current rotation around x, y and z.
func (a *App) Angles() (rx, ry, rz float64) { return a.rx, a.ry, a.rz }

// Zoom returns the current zoom factor applied on top of the scale.
func (a *App) Zoom() float64 { return a.zoom }

// Step drains pending key events and redraws when something changed.
func (a *App) Step() error {
	if a.kbd != nil {
	drain:
		for {
			select {
			case ev := <-a.kbd.Events():
				if err := a.HandleKey(ev); err != nil {
					return err
				}
			default:
				break drain
			}
		}
	}
	if a.dirty {
		return a.Render()
	}
	return nil
}

// HandleKey applies one key event. Arrows and w/a/s/d turn around x and y, page keys and q/e
// around z, +/- zoom, Home and r restore the initial view, Escape quits.
func (a *App) HandleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	step := a.cfg.Step
	switch ev.Code {
	case hal.KeyLeft:
		a.ry -= step
	case hal.KeyRight:
		a.ry += step
	case hal.KeyUp:
		a.rx -= step
	case hal.KeyDown:
		a.rx += step
	case hal.KeyPageUp:
		a.rz -= step
	case hal.KeyPageDown:
		a.rz += step
	case hal.KeyHome:
		a.reset()
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyUnknown:
		switch ev.Rune {
		case 'a':
			a.ry -= step
		case 'd':
			a.ry += step
		case 'w':
			a.rx -= step
		case 's':
			a.rx += step
		case 'q':
			a.rz -= step
		case 'e':
			a.rz += step
		case '+', '=':
			a.zoom *= zoomFactor
		case '-':
			a.zoom /= zoomFactor
		case 'r':
			a.reset()
		default:
			return nil
		}
	default:
		return nil
	}
	a.dirty = true
	a.log.Debugf("view rx=%.3f ry=%.3f rz=%.3f zoom=%.2f", a.rx, a.ry, a.rz, a.zoom)
	return nil
}

// Render projects the scene at the current angles and paints it.
func (a *App) Render() error {
	projs := projection.Project(a.scene.Shapes, a.rx, a.ry, a.rz)
	a.painter.View = raster.Centered(a.fb.Width(), a.fb.Height(), a.scale*a.zoom)
	a.painter.Render(a.target, projs)
	if a.hud != nil {
		a.hud.draw(
			a.scene.Name,
			fmt.Sprintf("rx %.2f ry %.2f rz %.2f", a.rx, a.ry, a.rz),
		)
	}
	a.dirty = false
	return a.fb.Present()
}

// FitScale returns the scale at which shapes stay inside a w x h area, minus margin pixels on
// every side, whatever the rotation.
func FitScale(shapes []shape.Shape, w, h, margin int) float64 {
	r := Radius(shapes)
	avail := float64(min(w, h))/2 - float64(margin)
	if r == 0 || avail <= 0 {
		return 1
	}
	return avail / r
}

// Radius bounds the distance from the origin of every vertex of shapes.
func Radius(shapes []shape.Shape) float64 {
	var mx, my, mz float64
	for _, p := range projection.Project(shapes, 0, 0, 0) {
		zMin, zMax := p.Depth()
		if zMin > zMax {
			continue
		}
		box := p.Bounds()
		mx = max(mx, math.Abs(box[0].X), math.Abs(box[1].X))
		my = max(my, math.Abs(box[0].Y), math.Abs(box[1].Y))
		mz = max(mz, math.Abs(zMin), math.Abs(zMax))
	}
	return math.Sqrt(mx*mx + my*my + mz*mz)
}
