package domain

import (
	"errors"
)

var (
	MessageSuccessGetUserImpact = "impact statistics retrieved successfully"
	MessageFailedGetUserImpact  = "failed to retrieve impact statistics"

	ErrImpactAccrualFailed = errors.New("failed to accrue impact statistics")
)

type (
	ImpactStatsResponse struct {
		ItemsSaved        int     `json:"items_saved"`
		ItemsShared       int     `json:"items_shared"`
		CO2SavedKg        float64 `json:"co2_saved_kg"`
		WaterSavedLiters  float64 `json:"water_saved_liters"`
		MoneySavedDollars float64 `json:"money_saved_dollars"`
	}

	PotentialImpactResponse struct {
		ItemCount         int     `json:"item_count"`
		CO2SavedKg        float64 `json:"co2_saved_kg"`
		WaterSavedLiters  float64 `json:"water_saved_liters"`
		MoneySavedDollars float64 `json:"money_saved_dollars"`
	}
)
