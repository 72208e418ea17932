package graphics

import (
	"errors"

	"github.com/richinsley/sparky/maths"
)

var (
	ErrIncompleteFramebuffer = errors.New("framebuffer is not complete")
	ErrInvalidSize           = errors.New("invalid size")
)

// ClearMask selects the buffers affected by Device.Clear.
type ClearMask uint32

const (
	ClearColorBuffer ClearMask = 1 << iota
	ClearDepthBuffer
)

// Filter is a texture sampling filter.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
	FilterMipmap
)

// Wrap is a texture coordinate wrap mode.
type Wrap int

const (
	WrapClamp Wrap = iota
	WrapRepeat
)

// Device is the slice of the graphics API used by the engine. Every call
// must be made on the thread that owns the current context.
type Device interface {
	// Init loads the API entry points. It requires a current context.
	Init() error
	Version() string
	EnableBlending()
	Viewport(x, y, width, height int)
	SetClearColor(c maths.Vec4)
	Clear(mask ClearMask)

	// NewTexture allocates an RGBA texture. pixels may be nil, otherwise it
	// holds width*height*4 bytes.
	NewTexture(width, height int, filter Filter, wrap Wrap, pixels []byte) uint32
	BindTexture(unit int, id uint32)
	DeleteTexture(id uint32)

	NewFramebuffer() uint32
	// BindFramebuffer binds id as the draw target. Zero is the window.
	BindFramebuffer(id uint32)
	DeleteFramebuffer(id uint32)
	NewDepthbuffer(width, height int) uint32
	DeleteDepthbuffer(id uint32)
	// AttachColor and AttachDepth attach to the currently bound framebuffer.
	AttachColor(texture uint32)
	AttachDepth(depthbuffer uint32)
	FramebufferComplete() bool
}
