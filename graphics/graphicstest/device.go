// Package graphicstest provides a recording graphics.Device for tests that
// run without a GPU.
package graphicstest

import (
	"fmt"

	"github.com/richinsley/sparky/graphics"
	"github.com/richinsley/sparky/maths"
)

// TextureInfo records the arguments of a NewTexture call.
type TextureInfo struct {
	Width, Height int
	Filter        graphics.Filter
	Wrap          graphics.Wrap
	Pixels        []byte
}

// Device implements graphics.Device by recording calls. Handles are
// allocated from a single counter so they never collide across kinds.
type Device struct {
	InitErr    error
	Incomplete bool

	Initialized   bool
	Blending      bool
	ViewportRect  [4]int
	ClearColorVal maths.Vec4
	Clears        []graphics.ClearMask
	Calls         []string

	BoundFramebuffer uint32
	BoundTextures    map[int]uint32

	Textures     map[uint32]TextureInfo
	Framebuffers map[uint32]bool
	Depthbuffers map[uint32][2]int
	ColorAttach  map[uint32]uint32
	DepthAttach  map[uint32]uint32

	// Deletes counts delete calls per handle; a value above 1 is a double free.
	Deletes map[uint32]int

	next uint32
}

func NewDevice() *Device {
	return &Device{
		BoundTextures: make(map[int]uint32),
		Textures:      make(map[uint32]TextureInfo),
		Framebuffers:  make(map[uint32]bool),
		Depthbuffers:  make(map[uint32][2]int),
		ColorAttach:   make(map[uint32]uint32),
		DepthAttach:   make(map[uint32]uint32),
		Deletes:       make(map[uint32]int),
	}
}

func (d *Device) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Device) Init() error {
	d.record("Init")
	if d.InitErr != nil {
		return d.InitErr
	}
	d.Initialized = true
	return nil
}

func (d *Device) Version() string { return "fake 1.0" }

func (d *Device) EnableBlending() {
	d.record("EnableBlending")
	d.Blending = true
}

func (d *Device) Viewport(x, y, width, height int) {
	d.record("Viewport %d %d %d %d", x, y, width, height)
	d.ViewportRect = [4]int{x, y, width, height}
}

func (d *Device) SetClearColor(c maths.Vec4) {
	d.record("SetClearColor")
	d.ClearColorVal = c
}

func (d *Device) Clear(mask graphics.ClearMask) {
	d.record("Clear %d", mask)
	d.Clears = append(d.Clears, mask)
}

func (d *Device) NewTexture(width, height int, filter graphics.Filter, wrap graphics.Wrap, pixels []byte) uint32 {
	id := d.alloc()
	d.record("NewTexture %d", id)
	var px []byte
	if pixels != nil {
		px = append([]byte(nil), pixels...)
	}
	d.Textures[id] = TextureInfo{Width: width, Height: height, Filter: filter, Wrap: wrap, Pixels: px}
	return id
}

func (d *Device) BindTexture(unit int, id uint32) {
	d.record("BindTexture %d %d", unit, id)
	d.BoundTextures[unit] = id
}

func (d *Device) DeleteTexture(id uint32) {
	d.record("DeleteTexture %d", id)
	d.Deletes[id]++
	delete(d.Textures, id)
}

func (d *Device) NewFramebuffer() uint32 {
	id := d.alloc()
	d.record("NewFramebuffer %d", id)
	d.Framebuffers[id] = true
	return id
}

func (d *Device) BindFramebuffer(id uint32) {
	d.record("BindFramebuffer %d", id)
	d.BoundFramebuffer = id
}

func (d *Device) DeleteFramebuffer(id uint32) {
	d.record("DeleteFramebuffer %d", id)
	d.Deletes[id]++
	delete(d.Framebuffers, id)
}

func (d *Device) NewDepthbuffer(width, height int) uint32 {
	id := d.alloc()
	d.record("NewDepthbuffer %d", id)
	d.Depthbuffers[id] = [2]int{width, height}
	return id
}

func (d *Device) DeleteDepthbuffer(id uint32) {
	d.record("DeleteDepthbuffer %d", id)
	d.Deletes[id]++
	delete(d.Depthbuffers, id)
}

func (d *Device) AttachColor(texture uint32) {
	d.record("AttachColor %d", texture)
	d.ColorAttach[d.BoundFramebuffer] = texture
}

func (d *Device) AttachDepth(depthbuffer uint32) {
	d.record("AttachDepth %d", depthbuffer)
	d.DepthAttach[d.BoundFramebuffer] = depthbuffer
}

func (d *Device) FramebufferComplete() bool {
	return !d.Incomplete
}

// Live returns the number of handles allocated and not yet deleted.
func (d *Device) Live() int {
	return len(d.Textures) + len(d.Framebuffers) + len(d.Depthbuffers)
}

var _ graphics.Device = (*Device)(nil)
