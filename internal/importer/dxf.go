package importer

import (
	"fmt"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/mariosromano/ribmaker/internal/model"
)

// positionEpsilon collapses curve points that land on the same normalized
// position after scaling.
const positionEpsilon = 1e-9

// ImportDepthCurve reads a DXF drawing and interprets its LWPOLYLINE and LINE
// entities as a single depth curve: X maps to run position and Y to depth,
// both normalized to [0, 1] over the drawing's bounding box. The result is
// sorted by position and suitable for Generator.SetCurve.
func ImportDepthCurve(path string) (model.Profile, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open DXF file: %w", err)
	}

	var points model.Profile
	for _, ent := range drawing.Entities() {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			for _, v := range e.Vertices {
				points = append(points, model.CurvePoint{Position: v[0], Depth: v[1]})
			}
		case *entity.Line:
			points = append(points,
				model.CurvePoint{Position: e.Start[0], Depth: e.Start[1]},
				model.CurvePoint{Position: e.End[0], Depth: e.End[1]})
		default:
			// Other entity types carry no curve information.
		}
	}

	curve, err := normalizeCurve(points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return curve, nil
}

// normalizeCurve rescales raw drawing coordinates into the unit square and
// sorts them by position. A curve needs at least two distinct positions; a
// flat curve (zero depth span) maps every point to 0.5.
func normalizeCurve(points model.Profile) (model.Profile, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("depth curve needs at least 2 points, got %d", len(points))
	}

	minX, maxX := points[0].Position, points[0].Position
	minY, maxY := points[0].Depth, points[0].Depth
	for _, p := range points[1:] {
		if p.Position < minX {
			minX = p.Position
		}
		if p.Position > maxX {
			maxX = p.Position
		}
		if p.Depth < minY {
			minY = p.Depth
		}
		if p.Depth > maxY {
			maxY = p.Depth
		}
	}

	spanX := maxX - minX
	if spanX <= positionEpsilon {
		return nil, fmt.Errorf("depth curve has no horizontal extent")
	}
	spanY := maxY - minY

	curve := make(model.Profile, 0, len(points))
	for _, p := range points {
		depth := 0.5
		if spanY > positionEpsilon {
			depth = (p.Depth - minY) / spanY
		}
		curve = append(curve, model.CurvePoint{
			Position: (p.Position - minX) / spanX,
			Depth:    depth,
		})
	}

	sort.Slice(curve, func(i, j int) bool { return curve[i].Position < curve[j].Position })

	// Collapse coincident positions, keeping the first occurrence.
	deduped := curve[:1]
	for _, p := range curve[1:] {
		if p.Position-deduped[len(deduped)-1].Position > positionEpsilon {
			deduped = append(deduped, p)
		}
	}
	if len(deduped) < 2 {
		return nil, fmt.Errorf("depth curve collapses to a single point")
	}
	return deduped, nil
}
