package engine

import (
	"image"
	"math"
)

// ImageSource wraps a decoded raster image and answers brightness queries at
// normalized coordinates. At most one image is active per generator; loading
// a new one simply replaces the old reference.
type ImageSource struct {
	img image.Image
}

// NewImageSource wraps an already-decoded image. A nil image yields a source
// that returns the neutral brightness everywhere.
func NewImageSource(img image.Image) *ImageSource {
	return &ImageSource{img: img}
}

// Sample returns the perceptual brightness in [0, 1] at normalized
// coordinates (u, v). Coordinates are multiplied by imageScale and wrapped
// into [0, 1) on both axes with a floored modulo, so the image tiles with
// period 1/imageScale: scales above 1 repeat the image, scales below 1 show
// less than one tile. v is flipped so v=0 samples the bottom row.
//
// A nil source, or one holding no image, returns a constant neutral 0.5;
// callers never special-case "no image".
func (s *ImageSource) Sample(u, v, imageScale float64) float64 {
	if s == nil || s.img == nil {
		return 0.5
	}
	if imageScale <= 0 {
		imageScale = 1
	}

	u *= imageScale
	v *= imageScale
	u -= math.Floor(u)
	v -= math.Floor(v)

	b := s.img.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w < 1 || h < 1 {
		return 0.5
	}

	col := int(math.Round(u * float64(w-1)))
	row := int(math.Round((1 - v) * float64(h-1)))
	if col < 0 {
		col = 0
	} else if col > w-1 {
		col = w - 1
	}
	if row < 0 {
		row = 0
	} else if row > h-1 {
		row = h - 1
	}

	r, g, bl, _ := s.img.At(b.Min.X+col, b.Min.Y+row).RGBA()

	// Rec.601 luma over the 16-bit channel values.
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)
	return lum / 65535.0
}
