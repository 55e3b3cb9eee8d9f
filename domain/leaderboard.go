package domain

var (
	MessageSuccessGetTopDonors     = "top donors retrieved successfully"
	MessageSuccessGetTopSavers     = "top carbon savers retrieved successfully"
	MessageSuccessGetUserRank      = "user rank retrieved successfully"
	MessageSuccessGetDonationStats = "donation statistics retrieved successfully"

	MessageFailedGetTopDonors     = "failed to retrieve top donors"
	MessageFailedGetTopSavers     = "failed to retrieve top carbon savers"
	MessageFailedGetUserRank      = "failed to retrieve user rank"
	MessageFailedGetDonationStats = "failed to retrieve donation statistics"
)

type (
	LeaderboardRow struct {
		UserID            string  `json:"user_id"`
		Username          string  `json:"username"`
		ProfilePicture    string  `json:"profile_picture"`
		ItemsShared       int     `json:"items_shared"`
		ItemsSaved        int     `json:"items_saved"`
		CO2SavedKg        float64 `json:"co2_saved_kg"`
		WaterSavedLiters  float64 `json:"water_saved_liters"`
		MoneySavedDollars float64 `json:"money_saved_dollars"`
		Rank              int     `json:"rank"`
	}

	// UserRank reports a user's standing among active donors. Rank and
	// Percentile are nil for users with no completed shares.
	UserRank struct {
		Rank        *int    `json:"rank"`
		TotalDonors int64   `json:"total_donors"`
		Percentile  *int    `json:"percentile"`
		ItemsShared int     `json:"items_shared"`
		CO2SavedKg  float64 `json:"co2_saved_kg"`
	}

	GlobalDonationStats struct {
		TotalUsers             int64   `json:"total_users"`
		TotalItemsSaved        int64   `json:"total_items_saved"`
		TotalItemsShared       int64   `json:"total_items_shared"`
		TotalCO2SavedKg        float64 `json:"total_co2_saved_kg"`
		TotalWaterSavedLiters  float64 `json:"total_water_saved_liters"`
		TotalMoneySavedDollars float64 `json:"total_money_saved_dollars"`
		AvgItemsSharedPerUser  float64 `json:"avg_items_shared_per_user"`
		AvgCO2SavedPerUser     float64 `json:"avg_co2_saved_per_user"`
		TotalAvailableItems    int64   `json:"total_available_items"`
	}
)
