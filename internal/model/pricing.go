package model

import (
	"fmt"
	"math"
)

// Rates holds the material and labor rates the pricing calculator runs on.
type Rates struct {
	PricePerSqFt  float64 `json:"price_per_sqft"`   // $ per square foot of rib surface
	LEDPricePerFt float64 `json:"led_price_per_ft"` // $ per linear foot of LED channel
	SheetWidth    float64 `json:"sheet_width"`      // raw sheet width, inches
	SheetHeight   float64 `json:"sheet_height"`     // raw sheet length, inches
	SheetCost     float64 `json:"sheet_cost"`       // $ per raw sheet
}

// DefaultRates returns the standard shop rates for a 48"x144" sheet.
func DefaultRates() Rates {
	return Rates{
		PricePerSqFt:  45,
		LEDPricePerFt: 30,
		SheetWidth:    48,
		SheetHeight:   144,
		SheetCost:     1800,
	}
}

// PricingResult is the derived cost and material breakdown for one parameter
// set. It is never persisted; it is recomputed from current parameters on
// every change.
type PricingResult struct {
	TotalWidth           float64 `json:"total_width"`     // inches
	RibLength            float64 `json:"rib_length"`      // inches, per rib
	TotalSurfaceAreaSqFt float64 `json:"total_surface_area_sqft"`
	RibPrice             float64 `json:"rib_price"`
	LEDLinearFeet        float64 `json:"led_linear_feet"`
	LEDPrice             float64 `json:"led_price"`
	TotalPrice           float64 `json:"total_price"`
	RibsPerSheet         int     `json:"ribs_per_sheet"`
	SectionsPerRib       int     `json:"sections_per_rib"`
	SheetsNeeded         int     `json:"sheets_needed"`
	SheetTotalCost       float64 `json:"sheet_total_cost"`
	WallCoverage         string  `json:"wall_coverage"`
}

// ComputePricing derives the cost and material breakdown from the current
// parameters. It is a pure function: the params are read, never mutated, and
// identical inputs always produce identical output.
//
// The sheet layout is a greedy count-based estimate, not a nesting solution:
// ribs-per-sheet is how many rib widths fit across one sheet, and ribs longer
// than a sheet are spliced into ceil(length/sheetHeight) sections. Real 2D
// nesting yield can differ either way.
func ComputePricing(p RibParams, mode InstallationMode, ledEnabled bool, rates Rates) PricingResult {
	maxDepth := math.Max(p.MinDepth, p.MaxDepth)
	count := p.Count
	if count < 1 {
		count = 1
	}

	ribLength := p.Height
	if mode == ModeBoth {
		ribLength += p.CeilingRun
	}

	totalSqFt := ribLength * maxDepth * float64(count) / 144.0
	ribPrice := totalSqFt * rates.PricePerSqFt

	ledFeet := ribLength / 12.0 * float64(count)
	ledPrice := ledFeet * rates.LEDPricePerFt

	total := ribPrice
	if ledEnabled {
		total += ledPrice
	}

	ribsPerSheet := 0
	if maxDepth > 0 {
		ribsPerSheet = int(math.Floor(rates.SheetWidth / maxDepth))
	}
	sectionsPerRib := 1
	if rates.SheetHeight > 0 {
		sectionsPerRib = int(math.Ceil(ribLength / rates.SheetHeight))
		if sectionsPerRib < 1 {
			sectionsPerRib = 1
		}
	}
	totalSlots := count * sectionsPerRib
	perSheet := ribsPerSheet
	if perSheet < 1 {
		perSheet = 1
	}
	sheetsNeeded := int(math.Ceil(float64(totalSlots) / float64(perSheet)))

	coverage := fmt.Sprintf("%.1f ft wide x %.1f ft tall", p.TotalWidth()/12.0, p.Height/12.0)
	if mode == ModeBoth {
		coverage += fmt.Sprintf(" + %.1f ft ceiling", p.CeilingRun/12.0)
	}

	return PricingResult{
		TotalWidth:           p.TotalWidth(),
		RibLength:            ribLength,
		TotalSurfaceAreaSqFt: totalSqFt,
		RibPrice:             ribPrice,
		LEDLinearFeet:        ledFeet,
		LEDPrice:             ledPrice,
		TotalPrice:           total,
		RibsPerSheet:         ribsPerSheet,
		SectionsPerRib:       sectionsPerRib,
		SheetsNeeded:         sheetsNeeded,
		SheetTotalCost:       float64(sheetsNeeded) * rates.SheetCost,
		WallCoverage:         coverage,
	}
}
