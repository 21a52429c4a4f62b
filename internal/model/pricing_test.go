package model

import (
	"math"
	"strings"
	"testing"
)

func TestComputePricingBudgetScenario(t *testing.T) {
	// Documented worked example: 40 ribs, 144" tall, 12" max depth, LED on.
	p := DefaultParams()
	p.Count = 40
	p.Height = 144
	p.MinDepth = 2
	p.MaxDepth = 12

	res := ComputePricing(p, ModeWall, true, DefaultRates())

	if math.Abs(res.RibPrice-21600) > 0.001 {
		t.Errorf("rib price = %.2f, want 21600.00", res.RibPrice)
	}
	if math.Abs(res.LEDPrice-14400) > 0.001 {
		t.Errorf("LED price = %.2f, want 14400.00", res.LEDPrice)
	}
	if math.Abs(res.TotalPrice-36000) > 0.001 {
		t.Errorf("total price = %.2f, want 36000.00", res.TotalPrice)
	}
}

func TestComputePricingLEDDisabled(t *testing.T) {
	p := DefaultParams()
	res := ComputePricing(p, ModeWall, false, DefaultRates())
	if res.TotalPrice != res.RibPrice {
		t.Errorf("with LED off, total (%.2f) should equal rib price (%.2f)", res.TotalPrice, res.RibPrice)
	}
	if res.LEDPrice <= 0 {
		t.Error("LED price should still be reported even when disabled")
	}
}

func TestComputePricingIdempotent(t *testing.T) {
	p := DefaultParams()
	a := ComputePricing(p, ModeBoth, true, DefaultRates())
	b := ComputePricing(p, ModeBoth, true, DefaultRates())
	if a != b {
		t.Errorf("pricing not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestComputePricingCornerRunLength(t *testing.T) {
	p := DefaultParams()
	p.Height = 100
	p.CeilingRun = 50

	wall := ComputePricing(p, ModeWall, false, DefaultRates())
	both := ComputePricing(p, ModeBoth, false, DefaultRates())

	if wall.RibLength != 100 {
		t.Errorf("wall rib length = %v, want 100", wall.RibLength)
	}
	if both.RibLength != 150 {
		t.Errorf("corner rib length = %v, want 150", both.RibLength)
	}
	if !strings.Contains(both.WallCoverage, "ceiling") {
		t.Errorf("corner coverage string should mention the ceiling: %q", both.WallCoverage)
	}
}

func TestComputePricingSheetEstimate(t *testing.T) {
	p := DefaultParams()
	p.Count = 10
	p.Height = 96 // one section per rib
	p.MinDepth = 2
	p.MaxDepth = 12 // 4 ribs across a 48" sheet

	res := ComputePricing(p, ModeWall, false, DefaultRates())

	if res.RibsPerSheet != 4 {
		t.Errorf("ribs per sheet = %d, want 4", res.RibsPerSheet)
	}
	if res.SectionsPerRib != 1 {
		t.Errorf("sections per rib = %d, want 1", res.SectionsPerRib)
	}
	// 10 slots / 4 per sheet = 3 sheets
	if res.SheetsNeeded != 3 {
		t.Errorf("sheets needed = %d, want 3", res.SheetsNeeded)
	}
	if res.SheetTotalCost != 3*1800 {
		t.Errorf("sheet cost = %.2f, want %.2f", res.SheetTotalCost, 3*1800.0)
	}
}

func TestComputePricingSplicedRibs(t *testing.T) {
	// Ribs longer than one sheet must be spliced.
	p := DefaultParams()
	p.Count = 2
	p.Height = 200 // > 144" sheet
	p.MaxDepth = 6

	res := ComputePricing(p, ModeWall, false, DefaultRates())
	if res.SectionsPerRib != 2 {
		t.Errorf("sections per rib = %d, want 2", res.SectionsPerRib)
	}
}

func TestComputePricingZeroDepthGuard(t *testing.T) {
	p := DefaultParams()
	p.MinDepth = 0
	p.MaxDepth = 0

	res := ComputePricing(p, ModeWall, false, DefaultRates())
	if res.RibsPerSheet != 0 {
		t.Errorf("ribs per sheet = %d, want 0 for zero depth", res.RibsPerSheet)
	}
	if res.SheetsNeeded < 1 {
		t.Errorf("sheets needed = %d, should still be at least 1 per slot group", res.SheetsNeeded)
	}
}

func TestComputePricingDoesNotMutateParams(t *testing.T) {
	p := DefaultParams()
	p.MinDepth = 12
	p.MaxDepth = 4 // deliberately reversed
	before := p

	res := ComputePricing(p, ModeWall, false, DefaultRates())

	if p != before {
		t.Error("ComputePricing must not mutate its input")
	}
	// The calculator still uses the larger of the two as the rib depth.
	want := p.Height * 12 * float64(p.Count) / 144.0
	if math.Abs(res.TotalSurfaceAreaSqFt-want) > 1e-9 {
		t.Errorf("surface area = %v, want %v", res.TotalSurfaceAreaSqFt, want)
	}
}
