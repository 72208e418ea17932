package graphics

import (
	"fmt"

	"github.com/richinsley/sparky/maths"
)

// Framebuffer is an offscreen render target made of a colour texture and a
// depth buffer.
type Framebuffer struct {
	dev         Device
	fbo         uint32
	depthbuffer uint32
	texture     *Texture
	size        maths.UVec2
	clearColor  maths.Vec4
	destroyed   bool
}

// NewFramebuffer allocates a framebuffer of the given size.
func NewFramebuffer(dev Device, size maths.UVec2) (*Framebuffer, error) {
	return NewFramebufferSize(dev, size.X, size.Y)
}

func NewFramebufferSize(dev Device, width, height uint32) (*Framebuffer, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("framebuffer %dx%d: %w", width, height, ErrInvalidSize)
	}

	fb := &Framebuffer{
		dev:        dev,
		size:       maths.NewUVec2(width, height),
		clearColor: maths.NewVec4(0, 0, 0, 1),
	}

	fb.fbo = dev.NewFramebuffer()
	dev.BindFramebuffer(fb.fbo)

	fb.depthbuffer = dev.NewDepthbuffer(int(width), int(height))

	texture, err := NewTexture(dev, fmt.Sprintf("framebuffer-%d", fb.fbo), int(width), int(height), TextureParams{})
	if err != nil {
		dev.BindFramebuffer(0)
		dev.DeleteDepthbuffer(fb.depthbuffer)
		dev.DeleteFramebuffer(fb.fbo)
		return nil, err
	}
	fb.texture = texture

	dev.AttachColor(texture.ID())
	dev.AttachDepth(fb.depthbuffer)

	complete := dev.FramebufferComplete()
	dev.BindFramebuffer(0)
	if !complete {
		fb.Destroy()
		return nil, fmt.Errorf("framebuffer %dx%d: %w", width, height, ErrIncompleteFramebuffer)
	}
	return fb, nil
}

// Bind makes the framebuffer the target of subsequent draw calls and sets
// the viewport to cover it.
func (fb *Framebuffer) Bind() {
	fb.dev.BindFramebuffer(fb.fbo)
	fb.dev.Viewport(0, 0, int(fb.size.X), int(fb.size.Y))
}

// Clear clears colour and depth using the stored clear colour. The
// framebuffer must be bound.
func (fb *Framebuffer) Clear() {
	fb.dev.SetClearColor(fb.clearColor)
	fb.dev.Clear(ClearColorBuffer | ClearDepthBuffer)
}

func (fb *Framebuffer) Size() maths.UVec2 { return fb.size }
func (fb *Framebuffer) Width() uint32     { return fb.size.X }
func (fb *Framebuffer) Height() uint32    { return fb.size.Y }

// Texture returns the colour attachment. The framebuffer keeps ownership.
func (fb *Framebuffer) Texture() *Texture { return fb.texture }

func (fb *Framebuffer) SetClearColor(c maths.Vec4) { fb.clearColor = c }
func (fb *Framebuffer) ClearColor() maths.Vec4     { return fb.clearColor }

// Destroy releases the framebuffer, its depth buffer and its texture.
// Calling it again has no effect.
func (fb *Framebuffer) Destroy() {
	if fb.destroyed {
		return
	}
	fb.destroyed = true
	fb.dev.DeleteFramebuffer(fb.fbo)
	fb.dev.DeleteDepthbuffer(fb.depthbuffer)
	if fb.texture != nil {
		fb.texture.Destroy()
	}
}

// BindDefault rebinds the window framebuffer and restores its viewport.
func BindDefault(dev Device, width, height int) {
	dev.BindFramebuffer(0)
	dev.Viewport(0, 0, width, height)
}
