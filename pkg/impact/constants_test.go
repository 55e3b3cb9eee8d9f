package impact

import (
	"math"
	"testing"
	"time"

	"Track2Give-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConvertToKg(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		want     float64
	}{
		{"kilograms pass through", 2, "kg", 2},
		{"grams", 500, "g", 0.5},
		{"pounds", 1, "lb", 0.453592},
		{"pounds plural", 2, "lbs", 0.907184},
		{"ounces", 10, "oz", 0.283495},
		{"liters", 1.5, "l", 1.5},
		{"milliliters", 250, "ml", 0.25},
		{"cups", 2, "cup", 0.472},
		{"items use average weight", 3, "item", 1.5},
		{"pieces use average weight", 2, "pieces", 1.0},
		{"packs", 2, "pack", 1.5},
		{"unknown unit falls back to item weight", 5, "banana", 2.5},
		{"unit is case-insensitive", 2, "KG", 2},
		{"unit whitespace ignored", 2, " kg ", 2},
		{"zero quantity", 0, "kg", 0},
		{"negative quantity", -3, "kg", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ConvertToKg(tt.quantity, tt.unit), 1e-9)
		})
	}
}

func TestConvertToKgNonFinite(t *testing.T) {
	assert.Zero(t, ConvertToKg(math.NaN(), "kg"))
	assert.Zero(t, ConvertToKg(math.Inf(1), "kg"))
	assert.Zero(t, ConvertToKg(math.Inf(-1), "kg"))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "meat", NormalizeCategory("meat"))
	assert.Equal(t, "meat", NormalizeCategory("MEAT"))
	assert.Equal(t, "dairy", NormalizeCategory("  Dairy "))
	assert.Equal(t, CategoryOther, NormalizeCategory(""))
	assert.Equal(t, CategoryOther, NormalizeCategory("sushi"))
}

func TestFactorsCoverEveryCategory(t *testing.T) {
	for category := range co2PerKg {
		assert.Contains(t, waterPerKg, category, "water factor missing for %s", category)
	}
	for category := range waterPerKg {
		assert.Contains(t, co2PerKg, category, "co2 factor missing for %s", category)
	}
}

func TestComputeItemImpact(t *testing.T) {
	item := &entities.FoodItem{
		ID:             uuid.New(),
		Category:       "meat",
		Quantity:       2,
		Unit:           "kg",
		EstimatedValue: 10,
	}

	got := ComputeItemImpact(item)

	assert.InDelta(t, 54.0, got.CO2Kg, 1e-9)
	assert.InDelta(t, 30800.0, got.WaterL, 1e-9)
	assert.InDelta(t, 10.0, got.MoneyUSD, 1e-9)
}

func TestComputeItemImpactUnknownCategory(t *testing.T) {
	item := &entities.FoodItem{
		Category: "mystery",
		Quantity: 1,
		Unit:     "kg",
	}

	got := ComputeItemImpact(item)

	assert.InDelta(t, 1.0, got.CO2Kg, 1e-9)
	assert.InDelta(t, 800.0, got.WaterL, 1e-9)
}

func TestComputeItemImpactDeterministic(t *testing.T) {
	item := &entities.FoodItem{
		Category:       "vegetables",
		Quantity:       3,
		Unit:           "lbs",
		EstimatedValue: 4.50,
		ExpiryDate:     time.Now(),
	}

	first := ComputeItemImpact(item)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ComputeItemImpact(item))
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.23, Round2(-1.234))
}
