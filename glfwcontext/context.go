package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/sparky/graphics"
	"github.com/richinsley/sparky/window"
)

// Platform opens GLFW windows with an OpenGL 4.1 core context.
type Platform struct {
	Resizable bool
	Visible   bool
}

func NewPlatform() *Platform {
	return &Platform{Resizable: true, Visible: true}
}

// Init initializes GLFW. Must be called from the main thread.
func (p *Platform) Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread.
func (p *Platform) Terminate() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

// Open creates the window and routes its input callbacks to handler.
func (p *Platform) Open(title string, width, height int, handler window.InputHandler) (graphics.Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if p.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if !p.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win, handler: handler}
	win.SetFramebufferSizeCallback(c.glfwResizeCallback)
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	return c, nil
}

// Context wraps a *glfw.Window and its OpenGL context.
type Context struct {
	window  *glfw.Window
	handler window.InputHandler
}

func (c *Context) glfwResizeCallback(w *glfw.Window, width, height int) {
	c.handler.OnResize(width, height)
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	c.handler.OnKey(int(key), action != glfw.Release)
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	c.handler.OnMouseButton(int(button), action != glfw.Release)
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	c.handler.OnCursor(xpos, ypos)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

// SwapInterval applies to the current context.
func (c *Context) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	c.window.SetShouldClose(value)
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

var (
	_ window.Platform  = (*Platform)(nil)
	_ graphics.Context = (*Context)(nil)
)
