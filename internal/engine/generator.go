package engine

import (
	"math"

	"github.com/mariosromano/ribmaker/internal/model"
)

// Generator produces the full rib array from a parameter set. It owns the
// optional image and custom-curve depth sources; the zero value generates
// pure wave-driven profiles.
type Generator struct {
	image *ImageSource
	curve model.Profile
}

func New() *Generator {
	return &Generator{}
}

// SetImage installs a decoded image as the depth source, replacing any
// previous image. Passing nil clears it.
func (g *Generator) SetImage(src *ImageSource) {
	g.image = src
}

// ClearImage removes the active image, restoring wave- or curve-driven
// generation.
func (g *Generator) ClearImage() {
	g.image = nil
}

// SetCurve installs a custom depth curve (positions and depths normalized to
// [0, 1]) used when no image is active. Passing nil clears it.
func (g *Generator) SetCurve(curve model.Profile) {
	g.curve = curve
}

// GenerateAll recomputes the entire rib array from scratch. It first
// normalizes the params in place (the corrected min/max ordering is visible
// to the caller), then produces one RibProfile per rib in index order
// 0..count-1. Consumers position rib i by its index, so the ordering is a
// hard contract.
//
// In ModeBoth each rib follows an L-shaped path over height+ceilingRun; the
// dense profile is split at the corner, the wall side keeping the split
// point and the ceiling side re-based to start at position 0. The split
// index rounds to the nearest sample, so the corner may sit up to one sample
// from the geometric bend.
func (g *Generator) GenerateAll(params *model.RibParams, mode model.InstallationMode, imageScale float64) []model.RibProfile {
	params.Normalize()

	src := g.depthSource(*params, imageScale)
	profiles := make([]model.RibProfile, 0, params.Count)

	for i := 0; i < params.Count; i++ {
		rp := model.RibProfile{
			Index:     i,
			Height:    params.Height,
			Thickness: params.Thickness,
		}

		if mode == model.ModeBoth && params.CeilingRun > 0 && params.Height > 0 {
			totalPath := params.Height + params.CeilingRun
			ctrl := generateLPathControlPoints(*params, i, totalPath, src)

			resolution := int(math.Round(float64(params.DisplayResolution) * totalPath / params.Height))
			if resolution < 2 {
				resolution = 2
			}
			full := EvaluateSpline(ctrl, resolution)

			splitFrac := params.Height / totalPath
			split := int(math.Round(splitFrac * float64(len(full))))
			if split < 1 {
				split = 1
			}
			if split > len(full)-1 {
				split = len(full) - 1
			}

			wall := make(model.Profile, split+1)
			copy(wall, full[:split+1])

			rp.ControlPoints = ctrl
			rp.Profile = wall
			rp.CeilingProfile = full[split:].Rebase(-params.Height)
			rp.CeilingRun = params.CeilingRun
		} else {
			ctrl := generateControlPoints(*params, i, src)
			rp.ControlPoints = ctrl
			rp.Profile = EvaluateSpline(ctrl, params.DisplayResolution)
		}

		profiles = append(profiles, rp)
	}
	return profiles
}

// depthSource selects the depth strategy for this pass: an active image wins,
// then a custom curve, then the wave function.
func (g *Generator) depthSource(params model.RibParams, imageScale float64) depthSource {
	if g.image != nil {
		return imageSource{src: g.image, count: params.Count, scale: imageScale}
	}
	if len(g.curve) > 0 {
		return curveSource{curve: g.curve}
	}
	return waveSource{params: params}
}
