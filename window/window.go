package window

import (
	"fmt"
	"log"

	"github.com/richinsley/sparky/graphics"
	"github.com/richinsley/sparky/maths"
)

// Config describes the window to create.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Window owns the native window, its graphics context and the per-frame
// input snapshot.
type Window struct {
	title  string
	width  int
	height int

	platform Platform
	context  graphics.Context
	device   graphics.Device
	services Services

	keys     [MaxKeys]bool
	keyState [MaxKeys]bool
	keyTyped [MaxKeys]bool

	mouseButtons [MaxButtons]bool
	mouseState   [MaxButtons]bool
	mouseClicked [MaxButtons]bool
	mousePos     maths.Vec2

	vsync    bool
	shutdown bool
}

// New initialises the platform, opens the window, loads the graphics API
// and initialises the services. On failure the platform is terminated and
// the error is returned.
func New(cfg Config, platform Platform, device graphics.Device, services Services) (*Window, error) {
	w := &Window{
		title:    cfg.Title,
		width:    cfg.Width,
		height:   cfg.Height,
		platform: platform,
		device:   device,
		services: services,
	}

	if err := platform.Init(); err != nil {
		platform.Terminate()
		return nil, fmt.Errorf("failed to initialize windowing library: %w", err)
	}

	ctx, err := platform.Open(w.title, w.width, w.height, w)
	if err != nil {
		platform.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	w.context = ctx
	w.context.MakeCurrent()

	if err := device.Init(); err != nil {
		w.context.Shutdown()
		platform.Terminate()
		return nil, fmt.Errorf("failed to initialize graphics: %w", err)
	}
	device.EnableBlending()
	log.Printf("OpenGL %s", device.Version())

	// Resize callbacks report framebuffer pixels, so start from the same unit.
	if fbWidth, fbHeight := w.context.GetFramebufferSize(); fbWidth > 0 && fbHeight > 0 {
		w.width, w.height = fbWidth, fbHeight
	}
	device.Viewport(0, 0, w.width, w.height)

	if err := w.initServices(); err != nil {
		w.context.Shutdown()
		platform.Terminate()
		return nil, err
	}
	return w, nil
}

func (w *Window) initServices() error {
	var started []Service
	for _, s := range []struct {
		name string
		svc  Service
	}{
		{"font", w.services.Fonts},
		{"texture", w.services.Textures},
		{"sound", tickerService(w.services.Sound)},
	} {
		if s.svc == nil {
			continue
		}
		if err := s.svc.Init(); err != nil {
			for i := len(started) - 1; i >= 0; i-- {
				started[i].Clean()
			}
			return fmt.Errorf("failed to initialize %s manager: %w", s.name, err)
		}
		started = append(started, s.svc)
	}
	return nil
}

// tickerService keeps a nil Ticker from becoming a non-nil Service.
func tickerService(t Ticker) Service {
	if t == nil {
		return nil
	}
	return t
}

func (w *Window) Title() string { return w.title }
func (w *Window) Width() int    { return w.width }
func (w *Window) Height() int   { return w.height }

// SetVsync sets the swap interval of the context.
func (w *Window) SetVsync(enabled bool) {
	interval := 0
	if enabled {
		interval = 1
	}
	w.context.SwapInterval(interval)
	w.vsync = enabled
}

func (w *Window) Vsync() bool { return w.vsync }

// Clear clears colour and depth of the bound target.
func (w *Window) Clear() {
	w.device.Clear(graphics.ClearColorBuffer | graphics.ClearDepthBuffer)
}

// Update presents the frame, dispatches pending events and advances audio.
func (w *Window) Update() {
	w.context.SwapBuffers()
	w.context.PollEvents()
	if w.services.Sound != nil {
		w.services.Sound.Update()
	}
}

// Closed reports whether closing the window was requested.
func (w *Window) Closed() bool {
	return w.context.ShouldClose()
}

// RequestClose flags the window for closing.
func (w *Window) RequestClose() {
	w.context.SetShouldClose(true)
}

// Shutdown cleans the services, destroys the window and terminates the
// windowing library. Only the first call has an effect.
func (w *Window) Shutdown() {
	if w.shutdown {
		return
	}
	w.shutdown = true

	if w.services.Fonts != nil {
		w.services.Fonts.Clean()
	}
	if w.services.Textures != nil {
		w.services.Textures.Clean()
	}
	if w.services.Sound != nil {
		w.services.Sound.Clean()
	}
	w.context.Shutdown()
	w.platform.Terminate()
}
