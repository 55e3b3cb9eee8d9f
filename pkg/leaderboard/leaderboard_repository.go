package leaderboard

import (
	"context"

	"Track2Give-Backend/entities"

	"gorm.io/gorm"
)

type (
	LeaderboardRepository interface {
		GetTopByItemsShared(ctx context.Context, limit int) ([]*RankedStats, error)
		GetTopByCO2Saved(ctx context.Context, limit int) ([]*RankedStats, error)
		GetStatsByUserID(ctx context.Context, userID string) (*entities.ImpactStats, error)
		CountDonors(ctx context.Context) (int64, error)
		CountDonorsAhead(ctx context.Context, itemsShared int, co2SavedKg float64) (int64, error)
		GetDonationAggregates(ctx context.Context) (DonationAggregates, error)
		CountAvailableSharedItems(ctx context.Context) (int64, error)
	}

	leaderboardRepository struct {
		db *gorm.DB
	}

	// RankedStats is one leaderboard candidate joined with the user's
	// display fields. The user columns are nullable: a stats row may
	// outlive its account.
	RankedStats struct {
		UserID            string
		ItemsShared       int
		ItemsSaved        int
		CO2SavedKg        float64
		WaterSavedLiters  float64
		MoneySavedDollars float64
		Username          *string
		ProfilePicture    *string
	}

	DonationAggregates struct {
		TotalUsers             int64
		TotalItemsSaved        int64
		TotalItemsShared       int64
		TotalCO2SavedKg        float64
		TotalWaterSavedLiters  float64
		TotalMoneySavedDollars float64
		AvgItemsSharedPerUser  float64
		AvgCO2SavedPerUser     float64
	}
)

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

const rankedStatsSelect = `impact_stats.user_id, impact_stats.items_shared, impact_stats.items_saved,
	impact_stats.co2_saved_kg, impact_stats.water_saved_liters, impact_stats.money_saved_dollars,
	users.username, users.profile_picture`

func (r *leaderboardRepository) GetTopByItemsShared(ctx context.Context, limit int) ([]*RankedStats, error) {
	var rows []*RankedStats

	if err := r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Select(rankedStatsSelect).
		Joins("LEFT JOIN users ON users.id = impact_stats.user_id").
		Where("impact_stats.items_shared > 0").
		Order("impact_stats.items_shared DESC, impact_stats.co2_saved_kg DESC, impact_stats.items_saved DESC, impact_stats.user_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *leaderboardRepository) GetTopByCO2Saved(ctx context.Context, limit int) ([]*RankedStats, error) {
	var rows []*RankedStats

	if err := r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Select(rankedStatsSelect).
		Joins("LEFT JOIN users ON users.id = impact_stats.user_id").
		Where("impact_stats.co2_saved_kg > 0").
		Order("impact_stats.co2_saved_kg DESC, impact_stats.items_shared DESC, impact_stats.items_saved DESC, impact_stats.user_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *leaderboardRepository) GetStatsByUserID(ctx context.Context, userID string) (*entities.ImpactStats, error) {
	var stats entities.ImpactStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *leaderboardRepository) CountDonors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Where("items_shared > 0").
		Count(&count).Error
	return count, err
}

// CountDonorsAhead counts users strictly ahead under the donor
// ordering: more shares, or equal shares and more CO2 saved.
func (r *leaderboardRepository) CountDonorsAhead(ctx context.Context, itemsShared int, co2SavedKg float64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Where("items_shared > ? OR (items_shared = ? AND co2_saved_kg > ?)", itemsShared, itemsShared, co2SavedKg).
		Count(&count).Error
	return count, err
}

func (r *leaderboardRepository) GetDonationAggregates(ctx context.Context) (DonationAggregates, error) {
	var agg DonationAggregates

	row := r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Select(`COUNT(*), COALESCE(SUM(items_saved), 0), COALESCE(SUM(items_shared), 0),
			COALESCE(SUM(co2_saved_kg), 0), COALESCE(SUM(water_saved_liters), 0), COALESCE(SUM(money_saved_dollars), 0),
			COALESCE(AVG(items_shared), 0), COALESCE(AVG(co2_saved_kg), 0)`).
		Row()

	if err := row.Scan(
		&agg.TotalUsers, &agg.TotalItemsSaved, &agg.TotalItemsShared,
		&agg.TotalCO2SavedKg, &agg.TotalWaterSavedLiters, &agg.TotalMoneySavedDollars,
		&agg.AvgItemsSharedPerUser, &agg.AvgCO2SavedPerUser,
	); err != nil {
		return DonationAggregates{}, err
	}

	return agg, nil
}

func (r *leaderboardRepository) CountAvailableSharedItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.SharedItem{}).
		Where("status = ?", "available").
		Count(&count).Error
	return count, err
}
