package window

import "github.com/richinsley/sparky/graphics"

// InputHandler receives native window events. The Window implements it and
// is handed to Platform.Open, so callbacks never recover their owner from
// an opaque user pointer.
type InputHandler interface {
	OnResize(width, height int)
	OnKey(key int, pressed bool)
	OnMouseButton(button int, pressed bool)
	OnCursor(x, y float64)
}

// Platform is the windowing library.
type Platform interface {
	Init() error
	// Open creates the native window and registers handler for its events.
	Open(title string, width, height int, handler InputHandler) (graphics.Context, error)
	Terminate()
}

// Service is a manager whose lifetime is tied to the window.
type Service interface {
	Init() error
	Clean()
}

// Ticker is a Service that advances once per frame.
type Ticker interface {
	Service
	Update()
}

// Services are the managers the window initialises on construction and
// cleans on shutdown. Nil entries are skipped.
type Services struct {
	Fonts    Service
	Textures Service
	Sound    Ticker
}
