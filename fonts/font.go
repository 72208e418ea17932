package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const dpi = 72

// Font is a parsed TrueType/OpenType font at a fixed pixel size.
type Font struct {
	name string
	size float64
	face font.Face
}

// NewFont parses data and builds a face of the given size in pixels.
func NewFont(name string, data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font %q: invalid size %v", name, size)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for font %q: %w", name, err)
	}
	return &Font{name: name, size: size, face: face}, nil
}

func (f *Font) Name() string    { return f.name }
func (f *Font) Size() float64   { return f.size }
func (f *Font) Face() font.Face { return f.face }

// Measure returns the advance width of text in pixels.
func (f *Font) Measure(text string) float64 {
	return toFloat(font.MeasureString(f.face, text))
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (f *Font) LineHeight() float64 {
	return toFloat(f.face.Metrics().Height)
}

func (f *Font) Close() error {
	return f.face.Close()
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
