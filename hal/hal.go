// Package hal is the contact point between the preview application and the host: logging, a
// framebuffer and the keyboard.
package hal

import "errors"

// ErrStop ends RunWindow without an error when returned by the step function.
var ErrStop = errors.New("hal: stop")

// Logger writes newline-delimited log lines. Lines written through WriteLineString and
// WriteLineBytes are informational.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
	Debugf(format string, args ...any)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEscape
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL groups the host services used by the application.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
