package window

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/richinsley/sparky/graphics"
	"github.com/richinsley/sparky/graphics/graphicstest"
	"github.com/richinsley/sparky/maths"
)

type fakeContext struct {
	log         *[]string
	handler     InputHandler
	pending     []func(InputHandler)
	interval    int
	shouldClose bool
	fbWidth     int
	fbHeight    int
}

func (c *fakeContext) MakeCurrent()                   { *c.log = append(*c.log, "MakeCurrent") }
func (c *fakeContext) SwapBuffers()                   { *c.log = append(*c.log, "SwapBuffers") }
func (c *fakeContext) SwapInterval(interval int)      { c.interval = interval }
func (c *fakeContext) ShouldClose() bool              { return c.shouldClose }
func (c *fakeContext) SetShouldClose(value bool)      { c.shouldClose = value }
func (c *fakeContext) GetFramebufferSize() (int, int) { return c.fbWidth, c.fbHeight }
func (c *fakeContext) Shutdown()                      { *c.log = append(*c.log, "Shutdown") }

// PollEvents delivers queued events inline, like glfw.PollEvents.
func (c *fakeContext) PollEvents() {
	*c.log = append(*c.log, "PollEvents")
	events := c.pending
	c.pending = nil
	for _, ev := range events {
		ev(c.handler)
	}
}

func (c *fakeContext) queue(ev func(InputHandler)) {
	c.pending = append(c.pending, ev)
}

type fakePlatform struct {
	log      []string
	initErr  error
	openErr  error
	fbWidth  int
	fbHeight int
	context  *fakeContext
}

func (p *fakePlatform) Init() error {
	p.log = append(p.log, "Init")
	return p.initErr
}

func (p *fakePlatform) Open(title string, width, height int, handler InputHandler) (graphics.Context, error) {
	p.log = append(p.log, "Open "+title)
	if p.openErr != nil {
		return nil, p.openErr
	}
	p.context = &fakeContext{log: &p.log, handler: handler, fbWidth: p.fbWidth, fbHeight: p.fbHeight}
	return p.context, nil
}

func (p *fakePlatform) Terminate() {
	p.log = append(p.log, "Terminate")
}

type fakeService struct {
	name    string
	log     *[]string
	initErr error
	updates int
}

func (s *fakeService) Init() error {
	*s.log = append(*s.log, s.name+".Init")
	return s.initErr
}

func (s *fakeService) Clean() { *s.log = append(*s.log, s.name+".Clean") }

func (s *fakeService) Update() { s.updates++ }

type fixture struct {
	platform *fakePlatform
	device   *graphicstest.Device
	fonts    *fakeService
	textures *fakeService
	sound    *fakeService
}

func newFixture() *fixture {
	f := &fixture{platform: &fakePlatform{}, device: graphicstest.NewDevice()}
	f.fonts = &fakeService{name: "fonts", log: &f.platform.log}
	f.textures = &fakeService{name: "textures", log: &f.platform.log}
	f.sound = &fakeService{name: "sound", log: &f.platform.log}
	return f
}

func (f *fixture) open() (*Window, error) {
	return New(Config{Title: "test", Width: 800, Height: 600}, f.platform, f.device,
		Services{Fonts: f.fonts, Textures: f.textures, Sound: f.sound})
}

func mustOpen(t *testing.T) (*Window, *fixture) {
	t.Helper()
	f := newFixture()
	w, err := f.open()
	if err != nil {
		t.Fatal(err)
	}
	return w, f
}

func pressKey(w *Window, c *fakeContext, key int, pressed bool) {
	c.queue(func(h InputHandler) { h.OnKey(key, pressed) })
	w.Update()
	w.UpdateInput()
}

func TestNewInitialisesInOrder(t *testing.T) {
	w, f := mustOpen(t)
	expected := "Init,Open test,MakeCurrent,fonts.Init,textures.Init,sound.Init"
	if got := strings.Join(f.platform.log, ","); got != expected {
		t.Fatalf("unexpected order:\n got %s\nwant %s", got, expected)
	}
	if !f.device.Initialized || !f.device.Blending {
		t.Fatal("expected the device to be initialised with blending")
	}
	if w.Title() != "test" || w.Width() != 800 || w.Height() != 600 {
		t.Fatalf("unexpected window %q %dx%d", w.Title(), w.Width(), w.Height())
	}
}

func TestNewUsesFramebufferSize(t *testing.T) {
	f := newFixture()
	f.platform.fbWidth, f.platform.fbHeight = 1600, 1200
	w, err := f.open()
	if err != nil {
		t.Fatal(err)
	}
	if w.Width() != 1600 || w.Height() != 1200 {
		t.Fatalf("expected the 1600x1200 framebuffer size, got %dx%d", w.Width(), w.Height())
	}
	if f.device.ViewportRect != [4]int{0, 0, 1600, 1200} {
		t.Fatalf("unexpected initial viewport %v", f.device.ViewportRect)
	}
}

func TestNewFallsBackToConfigSize(t *testing.T) {
	w, f := mustOpen(t)
	if w.Width() != 800 || w.Height() != 600 {
		t.Fatalf("expected the configured 800x600, got %dx%d", w.Width(), w.Height())
	}
	if f.device.ViewportRect != [4]int{0, 0, 800, 600} {
		t.Fatalf("unexpected initial viewport %v", f.device.ViewportRect)
	}
}

func TestInputStartsReleased(t *testing.T) {
	w, _ := mustOpen(t)
	for i := uint(0); i < MaxKeys; i++ {
		if w.IsKeyPressed(i) || w.IsKeyTyped(i) {
			t.Fatalf("key %d is set after construction", i)
		}
	}
	for i := uint(0); i < MaxButtons; i++ {
		if w.IsMouseButtonPressed(i) || w.IsMouseButtonClicked(i) {
			t.Fatalf("button %d is set after construction", i)
		}
	}
	if w.MousePosition() != (maths.Vec2{}) {
		t.Fatalf("unexpected mouse position %+v", w.MousePosition())
	}
}

func TestOutOfRangeCodesReportFalse(t *testing.T) {
	w, _ := mustOpen(t)
	for i := 0; i < MaxKeys; i++ {
		w.OnKey(i, true)
	}
	for i := 0; i < MaxButtons; i++ {
		w.OnMouseButton(i, true)
	}
	w.UpdateInput()

	for _, code := range []uint{MaxKeys, MaxKeys + 1, 1 << 20} {
		if w.IsKeyPressed(code) || w.IsKeyTyped(code) {
			t.Fatalf("key %d reported as pressed", code)
		}
	}
	for _, code := range []uint{MaxButtons, MaxButtons + 7} {
		if w.IsMouseButtonPressed(code) || w.IsMouseButtonClicked(code) {
			t.Fatalf("button %d reported as pressed", code)
		}
	}
}

func TestCallbacksIgnoreInvalidCodes(t *testing.T) {
	w, _ := mustOpen(t)
	w.OnKey(-1, true)
	w.OnKey(MaxKeys, true)
	w.OnMouseButton(-1, true)
	w.OnMouseButton(MaxButtons, true)
	for i := uint(0); i < MaxKeys; i++ {
		if w.IsKeyPressed(i) {
			t.Fatalf("key %d set by an invalid callback", i)
		}
	}
}

func TestKeyTypedOnlyOnFirstFrame(t *testing.T) {
	w, f := mustOpen(t)
	c := f.platform.context

	pressKey(w, c, KeyA, true)
	if !w.IsKeyPressed(KeyA) || !w.IsKeyTyped(KeyA) {
		t.Fatal("expected A pressed and typed on the first frame")
	}

	w.Update()
	w.UpdateInput()
	if !w.IsKeyPressed(KeyA) {
		t.Fatal("expected A still pressed")
	}
	if w.IsKeyTyped(KeyA) {
		t.Fatal("A must not be typed on the second held frame")
	}
}

func TestKeyTypedAfterRelease(t *testing.T) {
	w, f := mustOpen(t)
	c := f.platform.context

	pressKey(w, c, KeySpace, true)
	if !w.IsKeyTyped(KeySpace) {
		t.Fatal("expected typed on frame 1")
	}
	pressKey(w, c, KeySpace, false)
	if w.IsKeyTyped(KeySpace) || w.IsKeyPressed(KeySpace) {
		t.Fatal("expected released and not typed on frame 2")
	}
	pressKey(w, c, KeySpace, true)
	if !w.IsKeyTyped(KeySpace) {
		t.Fatal("expected typed on frame 3")
	}
}

func TestMouseClickedEdge(t *testing.T) {
	w, f := mustOpen(t)
	c := f.platform.context

	c.queue(func(h InputHandler) {
		h.OnMouseButton(MouseLeft, true)
		h.OnCursor(12.5, 40)
	})
	w.Update()
	w.UpdateInput()
	if !w.IsMouseButtonPressed(MouseLeft) || !w.IsMouseButtonClicked(MouseLeft) {
		t.Fatal("expected left button pressed and clicked")
	}
	if w.IsMouseButtonClicked(MouseRight) {
		t.Fatal("right button must not be clicked")
	}
	if w.MousePosition() != maths.NewVec2(12.5, 40) {
		t.Fatalf("unexpected mouse position %+v", w.MousePosition())
	}

	w.UpdateInput()
	if w.IsMouseButtonClicked(MouseLeft) {
		t.Fatal("click must last a single frame")
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	w, f := mustOpen(t)
	f.platform.context.queue(func(h InputHandler) { h.OnResize(1024, 768) })
	w.Update()

	if w.Width() != 1024 || w.Height() != 768 {
		t.Fatalf("unexpected size %dx%d", w.Width(), w.Height())
	}
	if f.device.ViewportRect != [4]int{0, 0, 1024, 768} {
		t.Fatalf("unexpected viewport %v", f.device.ViewportRect)
	}
}

func TestCursorUV(t *testing.T) {
	w, _ := mustOpen(t)
	w.OnCursor(400, 150)
	if uv := w.CursorUV(); uv != maths.NewVec2(0.5, 0.25) {
		t.Fatalf("unexpected uv %+v", uv)
	}
	w.OnCursor(-20, 9000)
	if uv := w.CursorUV(); uv != maths.NewVec2(0, 1) {
		t.Fatalf("cursor outside the window should clamp, got %+v", uv)
	}
}

func TestCursorUVMinimised(t *testing.T) {
	w, _ := mustOpen(t)
	w.OnCursor(10, 10)
	for _, size := range [][2]int{{0, 0}, {0, 600}, {800, 0}} {
		w.OnResize(size[0], size[1])
		uv := w.CursorUV()
		if math.IsNaN(float64(uv.X)) || math.IsInf(float64(uv.X), 0) ||
			math.IsNaN(float64(uv.Y)) || math.IsInf(float64(uv.Y), 0) {
			t.Fatalf("%dx%d window produced %+v", size[0], size[1], uv)
		}
		if uv != (maths.Vec2{}) {
			t.Fatalf("expected the origin for %dx%d, got %+v", size[0], size[1], uv)
		}
	}
}

func TestSetVsync(t *testing.T) {
	w, f := mustOpen(t)
	w.SetVsync(true)
	if !w.Vsync() || f.platform.context.interval != 1 {
		t.Fatal("expected vsync enabled with swap interval 1")
	}
	w.SetVsync(false)
	if w.Vsync() || f.platform.context.interval != 0 {
		t.Fatal("expected vsync disabled with swap interval 0")
	}
}

func TestUpdateAdvancesSound(t *testing.T) {
	w, f := mustOpen(t)
	f.platform.log = nil
	w.Update()
	w.Update()
	if f.sound.updates != 2 {
		t.Fatalf("expected 2 sound updates, got %d", f.sound.updates)
	}
	if got := strings.Join(f.platform.log, ","); got != "SwapBuffers,PollEvents,SwapBuffers,PollEvents" {
		t.Fatalf("unexpected calls %s", got)
	}
}

func TestClearAndClose(t *testing.T) {
	w, f := mustOpen(t)
	w.Clear()
	if len(f.device.Clears) != 1 || f.device.Clears[0] != graphics.ClearColorBuffer|graphics.ClearDepthBuffer {
		t.Fatalf("unexpected clears %v", f.device.Clears)
	}
	if w.Closed() {
		t.Fatal("window closed prematurely")
	}
	w.RequestClose()
	if !w.Closed() {
		t.Fatal("expected window to report closed")
	}
}

func TestShutdownOnce(t *testing.T) {
	w, f := mustOpen(t)
	f.platform.log = nil
	w.Shutdown()
	w.Shutdown()
	expected := "fonts.Clean,textures.Clean,sound.Clean,Shutdown,Terminate"
	if got := strings.Join(f.platform.log, ","); got != expected {
		t.Fatalf("unexpected shutdown:\n got %s\nwant %s", got, expected)
	}
}

func TestNilServices(t *testing.T) {
	p := &fakePlatform{}
	w, err := New(Config{Title: "bare", Width: 1, Height: 1}, p, graphicstest.NewDevice(), Services{})
	if err != nil {
		t.Fatal(err)
	}
	w.Update()
	w.Shutdown()
}

func TestInitFailuresTerminate(t *testing.T) {
	boom := errors.New("boom")

	f := newFixture()
	f.platform.initErr = boom
	if _, err := f.open(); !errors.Is(err, boom) {
		t.Fatalf("expected init error, got %v", err)
	}
	if got := strings.Join(f.platform.log, ","); got != "Init,Terminate" {
		t.Fatalf("unexpected calls %s", got)
	}

	f = newFixture()
	f.platform.openErr = boom
	if _, err := f.open(); !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
	if got := strings.Join(f.platform.log, ","); got != "Init,Open test,Terminate" {
		t.Fatalf("unexpected calls %s", got)
	}

	f = newFixture()
	f.device.InitErr = boom
	if _, err := f.open(); !errors.Is(err, boom) {
		t.Fatalf("expected device error, got %v", err)
	}
	if got := strings.Join(f.platform.log, ","); got != "Init,Open test,MakeCurrent,Shutdown,Terminate" {
		t.Fatalf("unexpected calls %s", got)
	}
}

func TestServiceFailureCleansStarted(t *testing.T) {
	boom := errors.New("no audio")
	f := newFixture()
	f.sound.initErr = boom

	_, err := f.open()
	if !errors.Is(err, boom) {
		t.Fatalf("expected sound error, got %v", err)
	}
	expected := "Init,Open test,MakeCurrent,fonts.Init,textures.Init,sound.Init,textures.Clean,fonts.Clean,Shutdown,Terminate"
	if got := strings.Join(f.platform.log, ","); got != expected {
		t.Fatalf("unexpected calls:\n got %s\nwant %s", got, expected)
	}
}
