package hal

// HostConfig sizes the host framebuffer and window.
type HostConfig struct {
	Title  string
	Width  int
	Height int
	// Zoom is the window pixel size of one framebuffer pixel.
	Zoom int
}

type hostHAL struct {
	logger Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation logging to logger.
func New(cfg HostConfig, logger Logger) HAL {
	return newHost(cfg, logger)
}

func newHost(cfg HostConfig, logger Logger) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
