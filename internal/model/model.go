package model

import "math"

// WaveType selects the periodic function that drives rib depth when no
// image or custom curve is installed.
type WaveType int

const (
	WaveSine     WaveType = iota // plain sine
	WaveSmooth                   // sine·|sine|, biased toward the extremes
	WaveTriangle                 // triangle wave with sharp linear ramps
)

func (w WaveType) String() string {
	switch w {
	case WaveSmooth:
		return "Smooth"
	case WaveTriangle:
		return "Triangle"
	default:
		return "Sine"
	}
}

// InstallationMode describes the physical run of each rib: a straight wall
// or ceiling segment, or an L-shaped path wrapping the wall-ceiling corner.
type InstallationMode string

const (
	ModeWall    InstallationMode = "wall"
	ModeCeiling InstallationMode = "ceiling"
	ModeBoth    InstallationMode = "both"
)

// CurvePoint is one (depth, position) sample along a rib's run. Depth is the
// offset from the wall plane, position the distance along the run, both in
// inches.
type CurvePoint struct {
	Depth    float64 `json:"depth"`
	Position float64 `json:"position"`
}

// Profile is an ordered sequence of curve points with strictly increasing
// position. It is used both for the sparse control points fed to the spline
// and for the dense interpolated result.
type Profile []CurvePoint

// Rebase shifts all positions by the given offset.
func (p Profile) Rebase(offset float64) Profile {
	result := make(Profile, len(p))
	for i, pt := range p {
		result[i] = CurvePoint{Depth: pt.Depth, Position: pt.Position + offset}
	}
	return result
}

// MaxDepth returns the largest depth value in the profile, or 0 when empty.
func (p Profile) MaxDepth() float64 {
	var max float64
	for _, pt := range p {
		if pt.Depth > max {
			max = pt.Depth
		}
	}
	return max
}

// RibParams is the full parameter set for one generation pass. All linear
// dimensions are inches.
type RibParams struct {
	Height            float64  `json:"height"`
	MinDepth          float64  `json:"min_depth"`
	MaxDepth          float64  `json:"max_depth"`
	Thickness         float64  `json:"thickness"`
	Count             int      `json:"count"`
	Spacing           float64  `json:"spacing"` // center-to-center rib pitch
	Frequency         float64  `json:"frequency"`
	Phase             float64  `json:"phase"` // per-rib phase step, in turns
	WaveType          WaveType `json:"wave_type"`
	ControlPoints     int      `json:"control_points"`
	DisplayResolution int      `json:"display_resolution"`
	Color             string   `json:"color"`
	CeilingRun        float64  `json:"ceiling_run"`
}

// DefaultParams returns a parameter set that renders a pleasant wall out of
// the box.
func DefaultParams() RibParams {
	return RibParams{
		Height:            96,
		MinDepth:          2,
		MaxDepth:          6,
		Thickness:         0.75,
		Count:             12,
		Spacing:           4,
		Frequency:         1,
		Phase:             0.05,
		WaveType:          WaveSine,
		ControlPoints:     8,
		DisplayResolution: 64,
		Color:             "#c8a06e",
		CeilingRun:        48,
	}
}

// Normalize repairs momentarily invalid slider values in place rather than
// rejecting them: depths are reordered so MinDepth <= MaxDepth, and counts
// are clamped to their smallest valid values. Callers see the corrected
// values on the same params object.
func (p *RibParams) Normalize() {
	if p.MinDepth > p.MaxDepth {
		p.MinDepth, p.MaxDepth = p.MaxDepth, p.MinDepth
	}
	if p.Count < 1 {
		p.Count = 1
	}
	if p.ControlPoints < 2 {
		p.ControlPoints = 2
	}
	if p.DisplayResolution < 2 {
		p.DisplayResolution = 2
	}
	if p.CeilingRun < 0 {
		p.CeilingRun = 0
	}
}

// RunLength returns the length of one rib's run for the given mode: the
// straight height, or height plus the ceiling run when wrapping the corner.
func (p RibParams) RunLength(mode InstallationMode) float64 {
	if mode == ModeBoth {
		return p.Height + p.CeilingRun
	}
	return p.Height
}

// PhaseShift returns the wave phase offset for the rib at the given index,
// in radians. Each rib is offset by a constant multiple of its index,
// producing a traveling wave across the array. A single rib has no inter-rib
// offset.
func (p RibParams) PhaseShift(ribIndex int) float64 {
	if p.Count <= 1 {
		return 0
	}
	return float64(ribIndex) * p.Phase * 2 * math.Pi
}

// TotalWidth returns the lateral extent of the rib array in inches: the
// pitch between first and last rib plus one rib thickness.
func (p RibParams) TotalWidth() float64 {
	if p.Count < 1 {
		return 0
	}
	return float64(p.Count-1)*p.Spacing + p.Thickness
}

// RibProfile is the generated output for a single rib. Profiles are owned by
// the generation pass that created them; consumers read but never mutate.
type RibProfile struct {
	Index         int     `json:"index"`
	Profile       Profile `json:"profile"`
	ControlPoints Profile `json:"control_points"`
	Height        float64 `json:"height"`
	Thickness     float64 `json:"thickness"`

	// Set only when the installation mode wraps the wall-ceiling corner.
	CeilingProfile Profile `json:"ceiling_profile,omitempty"`
	CeilingRun     float64 `json:"ceiling_run,omitempty"`
}

// Project ties a parameter set and its generation context together for
// save/load.
type Project struct {
	Name       string           `json:"name"`
	Params     RibParams        `json:"params"`
	Mode       InstallationMode `json:"mode"`
	ImageScale float64          `json:"image_scale"`
	LEDEnabled bool             `json:"led_enabled"`
	Material   string           `json:"material"`
}

func NewProject() Project {
	return Project{
		Name:       "Untitled",
		Params:     DefaultParams(),
		Mode:       ModeWall,
		ImageScale: 1.0,
	}
}
