package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mariosromano/ribmaker/internal/model"
)

// ExportExcel writes the cut list as an Excel workbook with a Ribs sheet
// (one row per rib) and a Pricing sheet (label/value breakdown).
func ExportExcel(path string, profiles []model.RibProfile, params model.RibParams, mode model.InstallationMode, ledEnabled bool, rates model.Rates) error {
	f := excelize.NewFile()
	defer f.Close()

	const ribSheet = "Ribs"
	if err := f.SetSheetName("Sheet1", ribSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	headers := []string{"Rib Index", "Height (in)", "Min Depth (in)", "Max Depth (in)", "Thickness (in)", "Phase Shift (rad)"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(ribSheet, cell, h); err != nil {
			return err
		}
	}

	for row, rp := range profiles {
		values := []interface{}{
			rp.Index, rp.Height, params.MinDepth, params.MaxDepth, rp.Thickness,
			params.PhaseShift(rp.Index),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(ribSheet, cell, v); err != nil {
				return err
			}
		}
	}

	const pricingSheet = "Pricing"
	if _, err := f.NewSheet(pricingSheet); err != nil {
		return fmt.Errorf("adding pricing sheet: %w", err)
	}

	pricing := model.ComputePricing(params, mode, ledEnabled, rates)
	rows := []struct {
		label string
		value interface{}
	}{
		{"Wall Coverage", pricing.WallCoverage},
		{"Rib Count", params.Count},
		{"Rib Length (in)", pricing.RibLength},
		{"Surface Area (sq ft)", pricing.TotalSurfaceAreaSqFt},
		{"Rib Price ($)", pricing.RibPrice},
		{"LED Enabled", ledEnabled},
		{"LED Linear Feet", pricing.LEDLinearFeet},
		{"LED Price ($)", pricing.LEDPrice},
		{"Ribs Per Sheet", pricing.RibsPerSheet},
		{"Sections Per Rib", pricing.SectionsPerRib},
		{"Sheets Needed", pricing.SheetsNeeded},
		{"Sheet Cost ($)", pricing.SheetTotalCost},
		{"Grand Total ($)", pricing.TotalPrice},
	}
	for i, r := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(pricingSheet, labelCell, r.label); err != nil {
			return err
		}
		if err := f.SetCellValue(pricingSheet, valueCell, r.value); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
