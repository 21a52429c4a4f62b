package engine

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rampImage builds a small grayscale test raster. Row 0 (top) is white,
// the bottom row black, with a linear ramp between.
func rampImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := uint8(255 - y*255/(h-1))
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func TestSampleNilSourceNeutral(t *testing.T) {
	var s *ImageSource
	assert.Equal(t, 0.5, s.Sample(0.3, 0.7, 1))

	empty := NewImageSource(nil)
	assert.Equal(t, 0.5, empty.Sample(0, 0, 1))
}

func TestSampleGrayscaleExtremes(t *testing.T) {
	src := NewImageSource(rampImage(4, 16))

	// v just below 1 maps to the top (white) row, v=0 to the bottom (black)
	// row. v=1 itself wraps back to the bottom row.
	assert.InDelta(t, 1.0, src.Sample(0.5, 0.97, 1), 0.01)
	assert.InDelta(t, 0.0, src.Sample(0.5, 0, 1), 0.01)
	assert.Equal(t, src.Sample(0.5, 0, 1), src.Sample(0.5, 1, 1))
}

func TestSampleVerticalOrientation(t *testing.T) {
	src := NewImageSource(rampImage(4, 16))
	// Brightness must increase with v (image top is brighter).
	lo := src.Sample(0.5, 0.2, 1)
	hi := src.Sample(0.5, 0.8, 1)
	assert.Greater(t, hi, lo)
}

func TestSampleWraparound(t *testing.T) {
	// A raster that varies along both axes, so periodicity breakage on
	// either one is visible.
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			g := uint8((x*255/7 + y*255/7) / 2)
			img.Set(x, y, color.NRGBA{g, g, g, 255})
		}
	}
	src := NewImageSource(img)

	// The tiling period is 1/imageScale on both axes.
	for _, scale := range []float64{1, 0.5, 2} {
		for _, uv := range [][2]float64{{0.1, 0.3}, {0.9, 0.7}, {-0.4, 0.2}} {
			u, v := uv[0], uv[1]
			base := src.Sample(u, v, scale)
			assert.Equal(t, base, src.Sample(u+1/scale, v, scale), "u period, scale=%v", scale)
			assert.Equal(t, base, src.Sample(u, v+1/scale, scale), "v period, scale=%v", scale)
		}
	}
}

func TestSampleScaleMagnifies(t *testing.T) {
	src := NewImageSource(rampImage(4, 16))

	// At scale 0.5, v=1 reaches only the middle of the tile instead of
	// wrapping; the sample sits between the extremes.
	mid := src.Sample(0.5, 1, 0.5)
	assert.Greater(t, mid, 0.25)
	assert.Less(t, mid, 0.75)
}

func TestSampleNegativeCoordinates(t *testing.T) {
	src := NewImageSource(rampImage(8, 8))
	got := src.Sample(-3.7, -1.2, 1)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
	assert.Equal(t, src.Sample(-3.7+1, -1.2+1, 1), got)
}

func TestSampleZeroScaleGuard(t *testing.T) {
	src := NewImageSource(rampImage(8, 8))
	assert.Equal(t, src.Sample(0.25, 0.25, 1), src.Sample(0.25, 0.25, 0))
}

func TestSampleColorLuminance(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255}) // pure red
	src := NewImageSource(img)
	assert.InDelta(t, 0.299, src.Sample(0, 0, 1), 0.005)
}
