package graphics

import (
	"fmt"
	"image"
	"log"
	"os"

	// Registered decoders for LoadTextureFile.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadTextureFile decodes the image at path and uploads it.
func LoadTextureFile(dev Device, name, path string, params TextureParams) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %q: %w", path, err)
	}
	log.Printf("Texture %s: decoded %s image from %s", name, format, path)
	return LoadTexture(dev, name, img, params)
}
