package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/mariosromano/ribmaker/internal/model"
)

// RibLabel holds the data encoded into each rib label's QR code.
type RibLabel struct {
	RibIndex   int     `json:"rib"`
	Height     float64 `json:"height_in"`
	MinDepth   float64 `json:"min_depth_in"`
	MaxDepth   float64 `json:"max_depth_in"`
	Thickness  float64 `json:"thickness_in"`
	CeilingRun float64 `json:"ceiling_run_in,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each label cell is approximately 66.7mm x 25.4mm on US
// Letter paper.
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// CollectRibLabels extracts label information from generated profiles, for
// export or testing.
func CollectRibLabels(profiles []model.RibProfile, params model.RibParams) []RibLabel {
	labels := make([]RibLabel, 0, len(profiles))
	for _, rp := range profiles {
		labels = append(labels, RibLabel{
			RibIndex:   rp.Index,
			Height:     rp.Height,
			MinDepth:   params.MinDepth,
			MaxDepth:   params.MaxDepth,
			Thickness:  rp.Thickness,
			CeilingRun: rp.CeilingRun,
		})
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels, one per rib, laid out on
// a standard Avery 5160 label sheet. Each label carries the rib index, its
// dimensions, and a QR code encoding the same metadata as JSON for scanning
// at install time.
func ExportLabels(path string, profiles []model.RibProfile, params model.RibParams) error {
	labels := CollectRibLabels(profiles, params)
	if len(labels) == 0 {
		return fmt.Errorf("no ribs to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for rib %d: %w", label.RibIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info RibLabel) error {
	// Light border for cutting guide.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_rib_%d", info.RibIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Rib %02d", info.RibIndex), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f\" x %.2f\" thick", info.Height, info.Thickness)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	depths := fmt.Sprintf("depth %.1f\" - %.1f\"", info.MinDepth, info.MaxDepth)
	pdf.CellFormat(textW, 3, depths, "", 1, "L", false, 0, "")

	if info.CeilingRun > 0 {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, fmt.Sprintf("wraps corner, %.1f\" ceiling", info.CeilingRun), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
