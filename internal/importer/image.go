// Package importer loads external design inputs: brightness maps from common
// image formats and custom depth curves from DXF drawings.
package importer

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/mariosromano/ribmaker/internal/engine"
)

// LoadImage reads a PNG, JPEG, or GIF file and wraps it as a brightness
// sampler. A file that cannot be opened or decoded returns an error and no
// sampler is installed.
func LoadImage(path string) (*engine.ImageSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return engine.NewImageSource(img), nil
}
