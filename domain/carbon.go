package domain

var (
	MessageSuccessGetCarbonHistory   = "carbon history retrieved successfully"
	MessageSuccessGetCarbonBreakdown = "carbon breakdown retrieved successfully"
	MessageSuccessGetGlobalCarbon    = "global carbon statistics retrieved successfully"
	MessageSuccessGetPotentialCarbon = "potential carbon savings retrieved successfully"

	MessageFailedGetCarbonHistory   = "failed to retrieve carbon history"
	MessageFailedGetCarbonBreakdown = "failed to retrieve carbon breakdown"
	MessageFailedGetGlobalCarbon    = "failed to retrieve global carbon statistics"
	MessageFailedGetPotentialCarbon = "failed to retrieve potential carbon savings"
)

type (
	// CarbonHistoryPoint is one day with at least one consumption.
	// Days without consumptions are not synthesized.
	CarbonHistoryPoint struct {
		Date          string  `json:"date"` // YYYY-MM-DD
		CO2Saved      float64 `json:"co2_saved"`
		CumulativeCO2 float64 `json:"cumulative_co2"`
	}

	CategoryBreakdownRow struct {
		Category  string  `json:"category"`
		CO2Saved  float64 `json:"co2_saved"`
		ItemCount int     `json:"item_count"`
	}

	GlobalCarbonStats struct {
		TotalCO2SavedKg        float64 `json:"total_co2_saved_kg"`
		TotalUsers             int64   `json:"total_users"`
		AvgCO2PerUser          float64 `json:"avg_co2_per_user"`
		MaxCO2PerUser          float64 `json:"max_co2_per_user"`
		EquivalentCarsRemoved  float64 `json:"equivalent_cars_removed"`
		EquivalentTreesPlanted float64 `json:"equivalent_trees_planted"`
	}

	PotentialCarbonSavings struct {
		PotentialCO2SavedKg    float64 `json:"potential_co2_saved_kg"`
		ItemCount              int     `json:"item_count"`
		EquivalentCarsRemoved  float64 `json:"equivalent_cars_removed"`
		EquivalentTreesPlanted float64 `json:"equivalent_trees_planted"`
	}
)
