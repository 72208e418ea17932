package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"log"
)

// TextureParams controls how a texture is sampled.
type TextureParams struct {
	Filter Filter
	Wrap   Wrap
	VFlip  bool
}

// Texture is an RGBA texture owned by the graphics device.
type Texture struct {
	dev       Device
	name      string
	id        uint32
	width     int
	height    int
	destroyed bool
}

// NewTexture allocates an empty texture, typically used as a render target.
func NewTexture(dev Device, name string, width, height int, params TextureParams) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture %q: %dx%d: %w", name, width, height, ErrInvalidSize)
	}
	id := dev.NewTexture(width, height, params.Filter, params.Wrap, nil)
	return &Texture{dev: dev, name: name, id: id, width: width, height: height}, nil
}

// vflip returns a vertically flipped copy of src.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// LoadTexture uploads img to a new texture.
func LoadTexture(dev Device, name string, img image.Image, params TextureParams) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("texture %q: image is nil", name)
	}

	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("texture %q: %dx%d: %w", name, size.X, size.Y, ErrInvalidSize)
	}

	// Normalise to tightly packed RGBA with the origin at zero.
	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	if params.VFlip {
		log.Printf("Texture %s: applying vertical flip", name)
		rgba = vflip(rgba)
	}

	id := dev.NewTexture(size.X, size.Y, params.Filter, params.Wrap, rgba.Pix)
	return &Texture{dev: dev, name: name, id: id, width: size.X, height: size.Y}, nil
}

func (t *Texture) ID() uint32            { return t.id }
func (t *Texture) Name() string          { return t.name }
func (t *Texture) Width() int            { return t.width }
func (t *Texture) Height() int           { return t.height }

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit int) {
	t.dev.BindTexture(unit, t.id)
}

// Destroy releases the texture. Calling it again has no effect.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.dev.DeleteTexture(t.id)
}
