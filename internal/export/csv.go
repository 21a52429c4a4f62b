package export

import (
	"fmt"
	"strings"

	"github.com/mariosromano/ribmaker/internal/model"
)

// csvHeader is the fixed per-rib column header of the dimension report.
const csvHeader = "Rib Index,Height (in),Min Depth (in),Max Depth (in),Thickness (in),Phase Shift (rad)"

// ExportCSV serializes the dimension and pricing report: one row per rib,
// followed by blank-line-separated Array Settings, Pricing, and LED Lighting
// sections and a final Grand Total row. Dollar amounts are formatted to two
// decimals, phase shifts to four.
func ExportCSV(profiles []model.RibProfile, params model.RibParams, mode model.InstallationMode, ledEnabled bool, rates model.Rates) string {
	var b strings.Builder

	pricing := model.ComputePricing(params, mode, ledEnabled, rates)

	b.WriteString(csvHeader + "\n")
	for _, rp := range profiles {
		fmt.Fprintf(&b, "%d,%g,%g,%g,%g,%.4f\n",
			rp.Index, rp.Height, params.MinDepth, params.MaxDepth, rp.Thickness,
			params.PhaseShift(rp.Index))
	}

	b.WriteString("\n")
	b.WriteString("Array Settings\n")
	fmt.Fprintf(&b, "Rib Count,%d\n", params.Count)
	fmt.Fprintf(&b, "Spacing (in),%g\n", params.Spacing)
	fmt.Fprintf(&b, "Frequency,%g\n", params.Frequency)
	fmt.Fprintf(&b, "Wave Type,%s\n", params.WaveType)
	fmt.Fprintf(&b, "Installation Mode,%s\n", mode)
	if mode == model.ModeBoth {
		fmt.Fprintf(&b, "Ceiling Run (in),%g\n", params.CeilingRun)
	}
	fmt.Fprintf(&b, "Wall Coverage,%s\n", pricing.WallCoverage)

	b.WriteString("\n")
	b.WriteString("Pricing\n")
	fmt.Fprintf(&b, "Total Width (in),%g\n", pricing.TotalWidth)
	fmt.Fprintf(&b, "Rib Length (in),%g\n", pricing.RibLength)
	fmt.Fprintf(&b, "Surface Area (sq ft),%.2f\n", pricing.TotalSurfaceAreaSqFt)
	fmt.Fprintf(&b, "Rib Price,$%.2f\n", pricing.RibPrice)
	fmt.Fprintf(&b, "Ribs Per Sheet,%d\n", pricing.RibsPerSheet)
	fmt.Fprintf(&b, "Sections Per Rib,%d\n", pricing.SectionsPerRib)
	fmt.Fprintf(&b, "Sheets Needed,%d\n", pricing.SheetsNeeded)
	fmt.Fprintf(&b, "Sheet Cost,$%.2f\n", pricing.SheetTotalCost)

	b.WriteString("\n")
	b.WriteString("LED Lighting\n")
	fmt.Fprintf(&b, "Enabled,%t\n", ledEnabled)
	fmt.Fprintf(&b, "Linear Feet,%.1f\n", pricing.LEDLinearFeet)
	fmt.Fprintf(&b, "LED Price,$%.2f\n", pricing.LEDPrice)

	b.WriteString("\n")
	fmt.Fprintf(&b, "Grand Total,$%.2f\n", pricing.TotalPrice)

	return b.String()
}
