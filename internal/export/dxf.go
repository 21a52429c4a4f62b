// Package export serializes generated rib profiles into fabrication
// artifacts: DXF cut files, CSV dimension reports, PDF spec sheets, Excel
// cut lists, and QR part labels.
package export

import (
	"math"
	"strconv"
	"strings"

	"github.com/mariosromano/ribmaker/internal/model"
)

// Cut-file layer names. These are a compatibility contract with downstream
// CAD tooling and must not change.
const (
	layerCurves = "CURVES"
	layerLines  = "LINES"
)

// ribLayoutGap is the multiplier on max depth used to offset ribs along the
// X axis so they never overlap in the flat cut layout.
const ribLayoutGap = 1.2

// ExportDXF serializes the rib profiles as a minimal DXF R12 document for
// CNC cutting. Every rib becomes four entity groups on a shared sheet
// layout: a bottom edge line from the wall line to the profile's first
// point, the dense profile as a POLYLINE, a top edge line back to the wall
// line, and a straight wall-side edge closing the outline. Ribs with fewer
// than two profile points are skipped rather than emitted malformed.
//
// The section ordering, layer table, and per-rib group sequence are fixed;
// downstream fabrication tooling parses this exact dialect.
func ExportDXF(profiles []model.RibProfile, params model.RibParams) string {
	var b strings.Builder

	maxDepth := math.Max(params.MinDepth, params.MaxDepth)
	offsetStep := maxDepth * ribLayoutGap

	writeDXFHeader(&b)
	writeDXFTables(&b)

	tag(&b, 0, "SECTION")
	tag(&b, 2, "ENTITIES")
	for _, rp := range profiles {
		if len(rp.Profile) < 2 {
			continue
		}
		writeRibEntities(&b, rp, float64(rp.Index)*offsetStep)
	}
	tag(&b, 0, "ENDSEC")
	tag(&b, 0, "EOF")

	return b.String()
}

func writeDXFHeader(b *strings.Builder) {
	tag(b, 0, "SECTION")
	tag(b, 2, "HEADER")
	tag(b, 9, "$ACADVER")
	tag(b, 1, "AC1009")
	tag(b, 9, "$INSUNITS")
	tag(b, 70, "1") // inches
	tag(b, 0, "ENDSEC")
}

func writeDXFTables(b *strings.Builder) {
	tag(b, 0, "SECTION")
	tag(b, 2, "TABLES")
	tag(b, 0, "TABLE")
	tag(b, 2, "LAYER")
	tag(b, 70, "2")
	for _, layer := range []string{layerCurves, layerLines} {
		tag(b, 0, "LAYER")
		tag(b, 2, layer)
		tag(b, 70, "0")
		tag(b, 62, "7")
		tag(b, 6, "CONTINUOUS")
	}
	tag(b, 0, "ENDTAB")
	tag(b, 0, "ENDSEC")
}

// writeRibEntities emits one rib's four entity groups, offset along X.
func writeRibEntities(b *strings.Builder, rp model.RibProfile, ox float64) {
	first := rp.Profile[0]
	last := rp.Profile[len(rp.Profile)-1]

	// Bottom edge: wall line to the profile's first point.
	writeLine(b, ox, 0, ox+first.Depth, first.Position)

	// The profile curve itself.
	tag(b, 0, "POLYLINE")
	tag(b, 8, layerCurves)
	tag(b, 66, "1")
	tag(b, 70, "0")
	for _, p := range rp.Profile {
		tag(b, 0, "VERTEX")
		tag(b, 8, layerCurves)
		tag(b, 10, coord(ox+p.Depth))
		tag(b, 20, coord(p.Position))
		tag(b, 30, coord(0))
	}
	tag(b, 0, "SEQEND")

	// Top edge: profile's last point back to the wall line at full height.
	writeLine(b, ox+last.Depth, last.Position, ox, rp.Height)

	// Wall-side edge closing the outline.
	writeLine(b, ox, rp.Height, ox, 0)
}

func writeLine(b *strings.Builder, x1, y1, x2, y2 float64) {
	tag(b, 0, "LINE")
	tag(b, 8, layerLines)
	tag(b, 10, coord(x1))
	tag(b, 20, coord(y1))
	tag(b, 30, coord(0))
	tag(b, 11, coord(x2))
	tag(b, 21, coord(y2))
	tag(b, 31, coord(0))
}

// tag writes one DXF group code / value pair.
func tag(b *strings.Builder, code int, value string) {
	b.WriteString(strconv.Itoa(code))
	b.WriteString("\n")
	b.WriteString(value)
	b.WriteString("\n")
}

// coord formats a coordinate to the fixed 6 decimal places the dialect
// requires.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
