package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/mariosromano/ribmaker/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a spec-sheet PDF: a flat layout page drawing every rib
// profile side by side, followed by a pricing summary page.
func ExportPDF(path string, profiles []model.RibProfile, params model.RibParams, mode model.InstallationMode, ledEnabled bool, rates model.Rates) error {
	if len(profiles) == 0 {
		return fmt.Errorf("no rib profiles to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, profiles, params)

	pdf.AddPage()
	renderPricingPage(pdf, params, mode, ledEnabled, rates)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the flat cut layout: each rib outline at its sheet
// offset, scaled to fit the page.
func renderLayoutPage(pdf *fpdf.Fpdf, profiles []model.RibProfile, params model.RibParams) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Rib Wall Cut Layout — %d ribs, %.0f\" tall", len(profiles), params.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	maxDepth := math.Max(params.MinDepth, params.MaxDepth)
	offsetStep := maxDepth * ribLayoutGap

	// Layout extents in inches.
	layoutW := float64(len(profiles)-1)*offsetStep + maxDepth
	layoutH := 0.0
	for _, rp := range profiles {
		if rp.Height > layoutH {
			layoutH = rp.Height
		}
	}
	if layoutW <= 0 || layoutH <= 0 {
		return
	}

	drawW := pageWidth - marginLeft - marginRight
	drawH := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawW/layoutW, drawH/layoutH)

	originX := marginLeft
	// Page Y grows downward; run position grows upward.
	originY := drawAreaTop + layoutH*scale

	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.25)

	for _, rp := range profiles {
		if len(rp.Profile) < 2 {
			continue
		}
		ox := float64(rp.Index) * offsetStep

		// Wall-side edge, bottom edge, profile, top edge.
		first := rp.Profile[0]
		last := rp.Profile[len(rp.Profile)-1]

		pdf.Line(
			originX+ox*scale, originY,
			originX+ox*scale, originY-rp.Height*scale)
		pdf.Line(
			originX+ox*scale, originY,
			originX+(ox+first.Depth)*scale, originY-first.Position*scale)

		prev := first
		for _, p := range rp.Profile[1:] {
			pdf.Line(
				originX+(ox+prev.Depth)*scale, originY-prev.Position*scale,
				originX+(ox+p.Depth)*scale, originY-p.Position*scale)
			prev = p
		}

		pdf.Line(
			originX+(ox+last.Depth)*scale, originY-last.Position*scale,
			originX+ox*scale, originY-rp.Height*scale)

		// Rib index below the outline.
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetXY(originX+ox*scale, originY+1)
		pdf.CellFormat(maxDepth*scale, 3, fmt.Sprintf("%d", rp.Index), "", 0, "C", false, 0, "")
	}
}

// renderPricingPage draws the pricing and material summary.
func renderPricingPage(pdf *fpdf.Fpdf, params model.RibParams, mode model.InstallationMode, ledEnabled bool, rates model.Rates) {
	pricing := model.ComputePricing(params, mode, ledEnabled, rates)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Rib Wall Estimate", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	items := []struct {
		label string
		value string
	}{
		{"Wall Coverage", pricing.WallCoverage},
		{"Rib Count", fmt.Sprintf("%d", params.Count)},
		{"Rib Length", fmt.Sprintf("%.1f in", pricing.RibLength)},
		{"Surface Area", fmt.Sprintf("%.2f sq ft", pricing.TotalSurfaceAreaSqFt)},
		{"Rib Price", fmt.Sprintf("$%.2f", pricing.RibPrice)},
		{"LED Linear Feet", fmt.Sprintf("%.1f ft", pricing.LEDLinearFeet)},
		{"LED Price", fmt.Sprintf("$%.2f", pricing.LEDPrice)},
		{"Ribs Per Sheet", fmt.Sprintf("%d", pricing.RibsPerSheet)},
		{"Sections Per Rib", fmt.Sprintf("%d", pricing.SectionsPerRib)},
		{"Sheets Needed", fmt.Sprintf("%d", pricing.SheetsNeeded)},
		{"Sheet Cost", fmt.Sprintf("$%.2f", pricing.SheetTotalCost)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(marginLeft+5, y)
	totalLabel := "Grand Total"
	if ledEnabled {
		totalLabel += " (incl. LED)"
	}
	pdf.CellFormat(60, 8, totalLabel+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("$%.2f", pricing.TotalPrice), "", 0, "L", false, 0, "")

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RibMaker — Parametric Rib Wall Designer", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
