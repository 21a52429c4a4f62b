package model

import "github.com/google/uuid"

// Material represents a reusable sheet material definition with its pricing.
type Material struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SheetWidth   float64 `json:"sheet_width"`  // inches
	SheetHeight  float64 `json:"sheet_height"` // inches
	SheetCost    float64 `json:"sheet_cost"`   // $ per sheet
	PricePerSqFt float64 `json:"price_per_sqft"`
}

// NewMaterial creates a new Material with a generated ID.
func NewMaterial(name string, width, height, sheetCost, pricePerSqFt float64) Material {
	return Material{
		ID:           uuid.New().String()[:8],
		Name:         name,
		SheetWidth:   width,
		SheetHeight:  height,
		SheetCost:    sheetCost,
		PricePerSqFt: pricePerSqFt,
	}
}

// ApplyToRates copies this material's sheet dimensions and pricing into the
// given rates, leaving unrelated rates (LED) untouched.
func (m Material) ApplyToRates(r *Rates) {
	r.SheetWidth = m.SheetWidth
	r.SheetHeight = m.SheetHeight
	r.SheetCost = m.SheetCost
	r.PricePerSqFt = m.PricePerSqFt
}

// MaterialList holds the user's saved sheet materials.
type MaterialList struct {
	Materials []Material `json:"materials"`
}

// DefaultMaterials returns a list populated with common rib wall stock.
func DefaultMaterials() MaterialList {
	return MaterialList{
		Materials: []Material{
			NewMaterial("Walnut Veneer MDF 48x144", 48, 144, 1800, 45),
			NewMaterial("White Oak Veneer MDF 48x144", 48, 144, 1650, 42),
			NewMaterial("Paint-Grade MDF 48x144", 48, 144, 900, 28),
			NewMaterial("Baltic Birch Ply 48x96", 48, 96, 1100, 35),
			NewMaterial("Matte Black Valchromat 48x96", 48, 96, 1400, 40),
		},
	}
}

// FindByID returns a pointer to the material with the given ID, or nil.
func (ml *MaterialList) FindByID(id string) *Material {
	for i := range ml.Materials {
		if ml.Materials[i].ID == id {
			return &ml.Materials[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first material with the given name, or nil.
func (ml *MaterialList) FindByName(name string) *Material {
	for i := range ml.Materials {
		if ml.Materials[i].Name == name {
			return &ml.Materials[i]
		}
	}
	return nil
}

// Names returns the material names in list order.
func (ml *MaterialList) Names() []string {
	names := make([]string, len(ml.Materials))
	for i, m := range ml.Materials {
		names[i] = m.Name
	}
	return names
}
