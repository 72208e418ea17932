package window

const (
	MaxKeys    = 1024
	MaxButtons = 32
)

// Key codes follow GLFW numbering.
const (
	KeySpace  = 32
	KeyA      = 65
	KeyD      = 68
	KeyS      = 83
	KeyW      = 87
	KeyEscape = 256
	KeyEnter  = 257
	KeyTab    = 258
	KeyRight  = 262
	KeyLeft   = 263
	KeyDown   = 264
	KeyUp     = 265
	KeyF11    = 300
)

const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)
