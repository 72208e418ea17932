package window

import "github.com/richinsley/sparky/maths"

// IsKeyPressed reports whether key is held down. Codes at or above MaxKeys
// report false.
func (w *Window) IsKeyPressed(key uint) bool {
	if key >= MaxKeys {
		return false
	}
	return w.keys[key]
}

// IsKeyTyped reports whether key went down this frame.
func (w *Window) IsKeyTyped(key uint) bool {
	if key >= MaxKeys {
		return false
	}
	return w.keyTyped[key]
}

func (w *Window) IsMouseButtonPressed(button uint) bool {
	if button >= MaxButtons {
		return false
	}
	return w.mouseButtons[button]
}

// IsMouseButtonClicked reports whether button went down this frame.
func (w *Window) IsMouseButtonClicked(button uint) bool {
	if button >= MaxButtons {
		return false
	}
	return w.mouseClicked[button]
}

func (w *Window) MousePosition() maths.Vec2 {
	return w.mousePos
}

// CursorUV returns the cursor position divided by the window size, clamped
// to [0, 1]. A minimised window reports 0x0 and yields the origin.
func (w *Window) CursorUV() maths.Vec2 {
	if w.width <= 0 || w.height <= 0 {
		return maths.Vec2{}
	}
	return maths.NewVec2(clamp01(w.mousePos.X/float32(w.width)), clamp01(w.mousePos.Y/float32(w.height)))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// UpdateInput computes the typed and clicked edges from the raw state and
// remembers that state for the next frame. Call it once per frame after
// Update.
func (w *Window) UpdateInput() {
	for i := range w.keys {
		w.keyTyped[i] = w.keys[i] && !w.keyState[i]
	}
	for i := range w.mouseButtons {
		w.mouseClicked[i] = w.mouseButtons[i] && !w.mouseState[i]
	}
	w.keyState = w.keys
	w.mouseState = w.mouseButtons
}

func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	w.device.Viewport(0, 0, width, height)
}

// OnKey records a key transition. Unknown keys (GLFW reports -1) and codes
// beyond MaxKeys are dropped.
func (w *Window) OnKey(key int, pressed bool) {
	if key < 0 || key >= MaxKeys {
		return
	}
	w.keys[key] = pressed
}

func (w *Window) OnMouseButton(button int, pressed bool) {
	if button < 0 || button >= MaxButtons {
		return
	}
	w.mouseButtons[button] = pressed
}

func (w *Window) OnCursor(x, y float64) {
	w.mousePos = maths.NewVec2(float32(x), float32(y))
}

var _ InputHandler = (*Window)(nil)
