package engine

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/mariosromano/ribmaker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() model.RibParams {
	p := model.DefaultParams()
	p.Count = 5
	p.Height = 96
	p.ControlPoints = 6
	p.DisplayResolution = 32
	return p
}

func TestGenerateAllIndexOrder(t *testing.T) {
	g := New()
	p := testParams()
	profiles := g.GenerateAll(&p, model.ModeWall, 1)

	require.Len(t, profiles, p.Count)
	for i, rp := range profiles {
		assert.Equal(t, i, rp.Index)
		assert.Len(t, rp.Profile, p.DisplayResolution+1)
		assert.Equal(t, p.Height, rp.Height)
		assert.Equal(t, p.Thickness, rp.Thickness)
		assert.Nil(t, rp.CeilingProfile)
	}
}

func TestGenerateAllNormalizesDepthOrder(t *testing.T) {
	g := New()

	a := testParams()
	a.MinDepth = 4
	a.MaxDepth = 12
	forward := g.GenerateAll(&a, model.ModeWall, 1)

	b := testParams()
	b.MinDepth = 12
	b.MaxDepth = 4
	reversed := g.GenerateAll(&b, model.ModeWall, 1)

	// The caller-visible params are corrected in place.
	assert.Equal(t, 4.0, b.MinDepth)
	assert.Equal(t, 12.0, b.MaxDepth)

	// And the generated profiles are identical to the correctly-ordered run.
	assert.Equal(t, forward, reversed)
}

func TestGenerateAllDepthsWithinBounds(t *testing.T) {
	g := New()
	p := testParams()
	p.MinDepth = 2
	p.MaxDepth = 8
	profiles := g.GenerateAll(&p, model.ModeWall, 1)

	for _, rp := range profiles {
		for _, cp := range rp.ControlPoints {
			assert.GreaterOrEqual(t, cp.Depth, p.MinDepth-1e-9)
			assert.LessOrEqual(t, cp.Depth, p.MaxDepth+1e-9)
		}
	}
}

func TestGenerateAllCornerSplit(t *testing.T) {
	g := New()
	p := testParams()
	p.Height = 100
	p.CeilingRun = 50

	profiles := g.GenerateAll(&p, model.ModeBoth, 1)
	require.Len(t, profiles, p.Count)

	for _, rp := range profiles {
		require.NotEmpty(t, rp.CeilingProfile, "rib %d missing ceiling profile", rp.Index)
		assert.Equal(t, 50.0, rp.CeilingRun)

		// Continuity across the split, modulo one-sample rounding.
		sampleSpan := 150.0 / float64(len(rp.Profile)+len(rp.CeilingProfile))
		wallEnd := rp.Profile[len(rp.Profile)-1].Position
		assert.InDelta(t, 100.0, wallEnd, 2*sampleSpan)
		assert.InDelta(t, 0.0, rp.CeilingProfile[0].Position, 2*sampleSpan)

		// The ceiling slice starts where the wall slice ends.
		assert.InDelta(t, rp.Profile[len(rp.Profile)-1].Depth, rp.CeilingProfile[0].Depth, 1e-9)

		// Control point density scales with the longer path.
		assert.Equal(t, int(math.Round(float64(p.ControlPoints)*1.5)), len(rp.ControlPoints))
	}
}

func TestGenerateAllSingleRib(t *testing.T) {
	g := New()
	p := testParams()
	p.Count = 1

	profiles := g.GenerateAll(&p, model.ModeWall, 1)
	require.Len(t, profiles, 1)
	assert.Equal(t, 0, profiles[0].Index)
}

func TestGenerateAllClampsInvalidInput(t *testing.T) {
	g := New()
	p := testParams()
	p.Count = 0
	p.ControlPoints = 1
	p.DisplayResolution = 0

	profiles := g.GenerateAll(&p, model.ModeWall, 1)
	require.Len(t, profiles, 1, "count clamps to 1")
	assert.GreaterOrEqual(t, len(profiles[0].ControlPoints), 2)
	assert.GreaterOrEqual(t, len(profiles[0].Profile), 3)
}

func TestGenerateAllImageDriven(t *testing.T) {
	// A solid white image pushes every control point to max depth.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	g := New()
	g.SetImage(NewImageSource(img))
	p := testParams()
	p.MinDepth = 2
	p.MaxDepth = 10

	profiles := g.GenerateAll(&p, model.ModeWall, 1)
	for _, rp := range profiles {
		for _, cp := range rp.ControlPoints {
			assert.InDelta(t, 10.0, cp.Depth, 0.05)
		}
	}

	// Clearing the image restores wave-driven depths.
	g.ClearImage()
	waved := g.GenerateAll(&p, model.ModeWall, 1)
	assert.NotEqual(t, profiles, waved)
}

func TestGenerateAllCustomCurve(t *testing.T) {
	g := New()
	// A flat normalized curve at 1.0 pins every depth to MaxDepth.
	g.SetCurve(model.Profile{{Depth: 1, Position: 0}, {Depth: 1, Position: 1}})

	p := testParams()
	p.MinDepth = 3
	p.MaxDepth = 7

	profiles := g.GenerateAll(&p, model.ModeWall, 1)
	for _, rp := range profiles {
		for _, cp := range rp.ControlPoints {
			assert.InDelta(t, 7.0, cp.Depth, 1e-9)
		}
	}
}

func TestGenerateAllWaveTravel(t *testing.T) {
	// With a non-zero phase step, adjacent ribs differ.
	g := New()
	p := testParams()
	p.Phase = 0.1

	profiles := g.GenerateAll(&p, model.ModeWall, 1)
	assert.NotEqual(t, profiles[0].ControlPoints, profiles[1].ControlPoints)

	// With zero phase, all ribs are identical.
	p.Phase = 0
	same := g.GenerateAll(&p, model.ModeWall, 1)
	assert.Equal(t, same[0].ControlPoints, same[1].ControlPoints)
}

func TestCurveSourceInterpolation(t *testing.T) {
	c := curveSource{curve: model.Profile{
		{Depth: 0, Position: 0},
		{Depth: 1, Position: 0.5},
		{Depth: 0, Position: 1},
	}}
	assert.InDelta(t, 0.0, c.at(0, 0), 1e-12)
	assert.InDelta(t, 0.5, c.at(0, 0.25), 1e-12)
	assert.InDelta(t, 1.0, c.at(0, 0.5), 1e-12)
	assert.InDelta(t, 0.5, c.at(0, 0.75), 1e-12)
	assert.InDelta(t, 0.0, c.at(0, 1), 1e-12)
	// Out-of-range positions clamp to the ends.
	assert.InDelta(t, 0.0, c.at(0, -1), 1e-12)
	assert.InDelta(t, 0.0, c.at(0, 2), 1e-12)
}
