// Package gcode produces CNC toolpaths that cut rib profiles from sheet
// stock. Each rib becomes a closed contour cut in multiple passes down to the
// sheet thickness.
package gcode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mariosromano/ribmaker/internal/model"
)

// ribLayoutGap spaces rib contours across the stock, matching the flat
// export layout: each rib is offset by maxDepth times this factor.
const ribLayoutGap = 1.2

// Settings holds machining parameters. All linear values are inches, feeds
// are inches per minute.
type Settings struct {
	ToolDiameter float64 `json:"tool_diameter"`
	FeedRate     float64 `json:"feed_rate"`
	PlungeRate   float64 `json:"plunge_rate"`
	SpindleSpeed int     `json:"spindle_speed"`
	SafeZ        float64 `json:"safe_z"`
	PassDepth    float64 `json:"pass_depth"`
	Profile      string  `json:"profile"`
}

// DefaultSettings returns machining parameters suitable for 3/4" plywood
// with a 1/4" upcut bit.
func DefaultSettings() Settings {
	return Settings{
		ToolDiameter: 0.25,
		FeedRate:     100,
		PlungeRate:   30,
		SpindleSpeed: 18000,
		SafeZ:        0.5,
		PassDepth:    0.25,
		Profile:      "Grbl",
	}
}

// Generator produces GCode from generated rib profiles.
type Generator struct {
	Settings Settings
	profile  model.GCodeProfile
}

func New(settings Settings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  model.GetProfile(settings.Profile),
	}
}

// point is a 2D toolpath coordinate on the stock sheet.
type point struct {
	x, y float64
}

// Generate produces a single GCode program cutting every rib contour. The cut
// depth is the rib thickness, reached in PassDepth increments.
func (g *Generator) Generate(profiles []model.RibProfile, params model.RibParams) string {
	var b strings.Builder

	g.writeHeader(&b, profiles, params)

	maxDepth := math.Max(params.MinDepth, params.MaxDepth)
	offsetStep := maxDepth * ribLayoutGap

	for _, rp := range profiles {
		path := g.ribContour(rp, float64(rp.Index)*offsetStep)
		if len(path) < 3 {
			b.WriteString(g.comment(fmt.Sprintf("WARNING: rib %d has no usable contour, skipping", rp.Index)))
			continue
		}
		g.writeRibContour(&b, rp, path, params.Thickness)
	}

	g.writeFooter(&b)
	return b.String()
}

// ribContour builds the closed cut polygon for one rib: bottom edge, the
// sampled profile up the run, then the wall-side edge back down. The tool
// rides the line itself; kerf compensation is left to the controller's
// cutter-radius offset.
func (g *Generator) ribContour(rp model.RibProfile, offsetX float64) []point {
	if len(rp.Profile) < 2 {
		return nil
	}

	path := make([]point, 0, len(rp.Profile)+2)
	path = append(path, point{x: offsetX, y: 0})
	for _, cp := range rp.Profile {
		path = append(path, point{x: offsetX + cp.Depth, y: cp.Position})
	}
	path = append(path, point{x: offsetX, y: rp.Height})
	return path
}

func (g *Generator) writeHeader(b *strings.Builder, profiles []model.RibProfile, params model.RibParams) {
	p := g.profile

	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" RibMaker GCode — %d ribs\n", len(profiles)))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Rib: %.1f\" tall, depth %.1f\"-%.1f\", %.2f\" thick\n",
		params.Height, params.MinDepth, params.MaxDepth, params.Thickness))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Tool: %.3f\", Feed: %.0f in/min, Plunge: %.0f in/min\n",
		g.Settings.ToolDiameter, g.Settings.FeedRate, g.Settings.PlungeRate))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Depth: %.2f\" in %.2f\" passes\n", params.Thickness, g.Settings.PassDepth))
	b.WriteString(p.CommentPrefix)
	b.WriteString(fmt.Sprintf(" Profile: %s\n", p.Name))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}

	if p.SpindleStart != "" {
		b.WriteString(fmt.Sprintf(p.SpindleStart+"\n", g.Settings.SpindleSpeed))
	}

	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(0), g.format(0)))
	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString("\n")
}

// writeRibContour cuts one rib contour down to cutDepth, the sheet thickness,
// in PassDepth increments.
func (g *Generator) writeRibContour(b *strings.Builder, rp model.RibProfile, path []point, cutDepth float64) {
	b.WriteString(g.comment(fmt.Sprintf("--- Rib %d: %.1f\" tall, %d profile points ---",
		rp.Index, rp.Height, len(rp.Profile))))

	passDepth := g.Settings.PassDepth
	if passDepth <= 0 {
		passDepth = cutDepth
	}
	numPasses := int(math.Ceil(cutDepth / passDepth))
	if numPasses < 1 {
		numPasses = 1
	}

	for pass := 1; pass <= numPasses; pass++ {
		depth := float64(pass) * passDepth
		if depth > cutDepth {
			depth = cutDepth
		}

		b.WriteString(g.comment(fmt.Sprintf("Pass %d/%d, depth=%.3f\"", pass, numPasses, depth)))

		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove,
			g.format(path[0].x), g.format(path[0].y)))
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", g.profile.FeedMove,
			g.format(-depth), g.format(g.Settings.PlungeRate)))

		for i := 1; i < len(path); i++ {
			b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", g.profile.FeedMove,
				g.format(path[i].x), g.format(path[i].y),
				g.format(g.Settings.FeedRate)))
		}
		// Close the loop back to the first point.
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", g.profile.FeedMove,
			g.format(path[0].x), g.format(path[0].y),
			g.format(g.Settings.FeedRate)))

		b.WriteString(fmt.Sprintf("%s Z%s\n", g.profile.RapidMove, g.format(g.Settings.SafeZ)))
	}

	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString("\n")
	b.WriteString(p.CommentPrefix + " === Job complete ===\n")

	for _, code := range p.EndCode {
		code = strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ))
		b.WriteString(code + "\n")
	}

	if p.SpindleStop != "" {
		b.WriteString(p.SpindleStop + "\n")
	}
}

func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + "\n"
}

func (g *Generator) format(v float64) string {
	places := g.profile.DecimalPlaces
	if places <= 0 {
		places = 3
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}
