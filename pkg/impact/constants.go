package impact

import (
	"math"
	"strings"

	"Track2Give-Backend/entities"
)

// Equivalence constants for translating CO2 savings into relatable
// figures (EPA averages).
const (
	CarCO2PerYearKg  = 4600.0 // average passenger vehicle
	TreeCO2PerYearKg = 21.77  // average mature tree
	DefaultItemKg    = 0.5    // weight assumed for unknown units
)

const CategoryOther = "other"

// co2PerKg maps a food category to kg of CO2 emitted per kg of food.
var co2PerKg = map[string]float64{
	"dairy":       2.5,
	"meat":        27.0,
	"seafood":     6.0,
	"vegetables":  0.5,
	"fruits":      0.9,
	"grains":      1.1,
	"bakery":      0.8,
	"beverages":   0.3,
	"snacks":      1.5,
	"frozen":      2.0,
	"canned":      1.2,
	"condiments":  0.6,
	CategoryOther: 1.0,
}

// waterPerKg maps a food category to liters of water used per kg of food.
var waterPerKg = map[string]float64{
	"dairy":       1000,
	"meat":        15400,
	"seafood":     3500,
	"vegetables":  322,
	"fruits":      962,
	"grains":      1644,
	"bakery":      1608,
	"beverages":   300,
	"snacks":      800,
	"frozen":      1200,
	"canned":      900,
	"condiments":  400,
	CategoryOther: 800,
}

// kgPerUnit is the single canonical conversion table; every consumer of
// weights goes through ConvertToKg so CO2 figures stay internally
// consistent.
var kgPerUnit = map[string]float64{
	"kg":     1,
	"g":      0.001,
	"lb":     0.453592,
	"lbs":    0.453592,
	"oz":     0.0283495,
	"l":      1,
	"ml":     0.001,
	"cup":    0.236,
	"cups":   0.236,
	"item":   DefaultItemKg,
	"items":  DefaultItemKg,
	"piece":  DefaultItemKg,
	"pieces": DefaultItemKg,
	"pack":   0.75,
	"packs":  0.75,
}

// NormalizeCategory maps an arbitrary category string onto the closed
// category set, falling back to "other". Bad legacy data must never
// abort an aggregate computation.
func NormalizeCategory(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if _, ok := co2PerKg[key]; ok {
		return key
	}
	return CategoryOther
}

// CO2Factor returns kg CO2 per kg of food for a category.
func CO2Factor(category string) float64 {
	return co2PerKg[NormalizeCategory(category)]
}

// WaterFactor returns liters of water per kg of food for a category.
func WaterFactor(category string) float64 {
	return waterPerKg[NormalizeCategory(category)]
}

// ConvertToKg converts a quantity in the given unit to kilograms. The
// unit is matched case-insensitively; unknown units assume an average
// item weight. Non-finite or non-positive quantities yield 0.
func ConvertToKg(quantity float64, unit string) float64 {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		return 0
	}

	factor, ok := kgPerUnit[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		factor = DefaultItemKg
	}

	return quantity * factor
}

// ItemImpact is the environmental impact of a single food item.
type ItemImpact struct {
	CO2Kg    float64
	WaterL   float64
	MoneyUSD float64
}

// ComputeItemImpact computes the impact of one food item. Pure; missing
// or invalid categories are treated as "other".
func ComputeItemImpact(item *entities.FoodItem) ItemImpact {
	weightKg := ConvertToKg(item.Quantity, item.Unit)

	return ItemImpact{
		CO2Kg:    CO2Factor(item.Category) * weightKg,
		WaterL:   WaterFactor(item.Category) * weightKg,
		MoneyUSD: item.EstimatedValue,
	}
}

// Round2 rounds to two decimal places. Applied at the point of
// emission, never before accumulation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
