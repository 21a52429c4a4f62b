package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default rates applied to new projects
	DefaultPricePerSqFt  float64 `json:"default_price_per_sqft"`
	DefaultLEDPricePerFt float64 `json:"default_led_price_per_ft"`
	DefaultSheetWidth    float64 `json:"default_sheet_width"`
	DefaultSheetHeight   float64 `json:"default_sheet_height"`
	DefaultSheetCost     float64 `json:"default_sheet_cost"`

	// Application preferences
	DefaultImageScale   float64  `json:"default_image_scale"`
	DefaultGCodeProfile string   `json:"default_gcode_profile"`
	RecentProjects      []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultRates().
func DefaultAppConfig() AppConfig {
	rates := DefaultRates()
	return AppConfig{
		DefaultPricePerSqFt:  rates.PricePerSqFt,
		DefaultLEDPricePerFt: rates.LEDPricePerFt,
		DefaultSheetWidth:    rates.SheetWidth,
		DefaultSheetHeight:   rates.SheetHeight,
		DefaultSheetCost:     rates.SheetCost,
		DefaultImageScale:    1.0,
		DefaultGCodeProfile:  "Generic",
		RecentProjects:       []string{},
	}
}

// Rates builds a Rates value from the configured defaults.
func (c AppConfig) Rates() Rates {
	return Rates{
		PricePerSqFt:  c.DefaultPricePerSqFt,
		LEDPricePerFt: c.DefaultLEDPricePerFt,
		SheetWidth:    c.DefaultSheetWidth,
		SheetHeight:   c.DefaultSheetHeight,
		SheetCost:     c.DefaultSheetCost,
	}
}
