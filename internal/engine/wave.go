// Package engine generates rib depth profiles from a parameter set: sparse
// control points sourced from a wave function, a raster image, or a custom
// depth curve, interpolated into dense per-rib profiles.
package engine

import (
	"math"

	"github.com/mariosromano/ribmaker/internal/model"
)

// Wave evaluates the periodic depth function at normalized position t,
// returning a value in [-1, 1].
//
// WaveSine is a plain sine. WaveSmooth is sine·|sine|, which lingers near
// the extremes and crosses zero with a cusp. WaveTriangle is asin(sin)
// normalized by pi/2, giving sharp linear ramps. An unknown wave type falls
// back to plain sine; that is a defined default, not an error.
func Wave(t, frequency float64, waveType model.WaveType, phaseShift float64) float64 {
	angle := t*frequency*2*math.Pi + phaseShift
	switch waveType {
	case model.WaveSmooth:
		s := math.Sin(angle)
		return s * math.Abs(s)
	case model.WaveTriangle:
		return math.Asin(math.Sin(angle)) / (math.Pi / 2)
	default:
		return math.Sin(angle)
	}
}
