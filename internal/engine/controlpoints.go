package engine

import (
	"math"

	"github.com/mariosromano/ribmaker/internal/model"
)

// depthSource yields a normalized depth sample in [0, 1] for a rib at
// normalized run position t. The source is selected once per generation
// pass, not per sample.
type depthSource interface {
	at(ribIndex int, t float64) float64
}

// waveSource drives depth from the periodic wave function, with each rib
// phase-shifted by its index.
type waveSource struct {
	params model.RibParams
}

func (w waveSource) at(ribIndex int, t float64) float64 {
	return (Wave(t, w.params.Frequency, w.params.WaveType, w.params.PhaseShift(ribIndex)) + 1) / 2
}

// imageSource drives depth from image brightness: u spans the rib array,
// v spans the run.
type imageSource struct {
	src   *ImageSource
	count int
	scale float64
}

func (s imageSource) at(ribIndex int, t float64) float64 {
	u := 0.5
	if s.count > 1 {
		u = float64(ribIndex) / float64(s.count-1)
	}
	return s.src.Sample(u, t, s.scale)
}

// curveSource drives depth from an imported custom curve whose positions and
// depths are both normalized to [0, 1]. Every rib shares the same curve.
type curveSource struct {
	curve model.Profile
}

func (c curveSource) at(ribIndex int, t float64) float64 {
	pts := c.curve
	if len(pts) == 0 {
		return 0.5
	}
	if len(pts) == 1 || t <= pts[0].Position {
		return pts[0].Depth
	}
	for i := 1; i < len(pts); i++ {
		if t <= pts[i].Position {
			span := pts[i].Position - pts[i-1].Position
			if span <= 0 {
				return pts[i].Depth
			}
			f := (t - pts[i-1].Position) / span
			return pts[i-1].Depth + f*(pts[i].Depth-pts[i-1].Depth)
		}
	}
	return pts[len(pts)-1].Depth
}

// generateControlPoints produces the sparse control point sequence for one
// rib over a straight run: params.ControlPoints samples evenly spaced in
// position from 0 to height, depth mapped from the source into
// [MinDepth, MaxDepth].
func generateControlPoints(params model.RibParams, ribIndex int, src depthSource) model.Profile {
	n := params.ControlPoints
	if n < 2 {
		n = 2
	}
	return samplePoints(params, ribIndex, src, n, params.Height)
}

// generateLPathControlPoints is the corner-aware variant: positions span the
// combined wall+ceiling path, and the point count scales proportionally so
// control-point density per unit length matches the straight case.
func generateLPathControlPoints(params model.RibParams, ribIndex int, totalPath float64, src depthSource) model.Profile {
	n := params.ControlPoints
	if n < 2 {
		n = 2
	}
	if params.Height > 0 {
		n = int(math.Round(float64(n) * totalPath / params.Height))
		if n < 2 {
			n = 2
		}
	}
	return samplePoints(params, ribIndex, src, n, totalPath)
}

func samplePoints(params model.RibParams, ribIndex int, src depthSource, n int, runLength float64) model.Profile {
	pts := make(model.Profile, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		depth := params.MinDepth + src.at(ribIndex, t)*(params.MaxDepth-params.MinDepth)
		pts[i] = model.CurvePoint{Depth: depth, Position: t * runLength}
	}
	return pts
}
