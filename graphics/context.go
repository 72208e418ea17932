package graphics

// Context is a native window together with the graphics context bound to it.
type Context interface {
	MakeCurrent()
	SwapBuffers()
	// PollEvents processes pending window events. Registered input
	// callbacks run synchronously before it returns.
	PollEvents()
	SwapInterval(interval int)
	ShouldClose() bool
	SetShouldClose(value bool)
	// GetFramebufferSize returns the drawable size in pixels, which differs
	// from the window size on HiDPI displays.
	GetFramebufferSize() (int, int)
	// Shutdown destroys the native window.
	Shutdown()
}
