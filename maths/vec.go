package maths

// Vec2 is a 2D float vector, used for cursor positions.
type Vec2 struct {
	X, Y float32
}

// UVec2 is a 2D unsigned vector, used for pixel sizes.
type UVec2 struct {
	X, Y uint32
}

// Vec4 holds four floats. As a colour the components are R, G, B, A.
type Vec4 struct {
	X, Y, Z, W float32
}

func NewVec2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func NewUVec2(x, y uint32) UVec2 { return UVec2{X: x, Y: y} }

func NewVec4(x, y, z, w float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }
