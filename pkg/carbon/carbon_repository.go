package carbon

import (
	"context"
	"time"

	"Track2Give-Backend/entities"

	"gorm.io/gorm"
)

type (
	CarbonRepository interface {
		GetConsumedItems(ctx context.Context, userID string, since *time.Time) ([]*entities.FoodItem, error)
		GetUnexpiredItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetGlobalImpactAggregates(ctx context.Context) (GlobalImpactAggregates, error)
	}

	carbonRepository struct {
		db *gorm.DB
	}

	// GlobalImpactAggregates is the raw ImpactStats rollup before
	// equivalence conversion and rounding.
	GlobalImpactAggregates struct {
		TotalCO2SavedKg float64
		TotalUsers      int64
		AvgCO2PerUser   float64
		MaxCO2PerUser   float64
	}
)

func NewCarbonRepository(db *gorm.DB) CarbonRepository {
	return &carbonRepository{db: db}
}

func (r *carbonRepository) GetConsumedItems(ctx context.Context, userID string, since *time.Time) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed = ? AND consumed_date IS NOT NULL", userID, true)

	if since != nil {
		query = query.Where("consumed_date >= ?", *since)
	}

	if err := query.Order("consumed_date asc").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *carbonRepository) GetUnexpiredItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed = ? AND expiry_date >= ?", userID, false, time.Now()).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *carbonRepository) GetGlobalImpactAggregates(ctx context.Context) (GlobalImpactAggregates, error) {
	var agg GlobalImpactAggregates

	row := r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Select("COALESCE(SUM(co2_saved_kg), 0), COUNT(*), COALESCE(AVG(co2_saved_kg), 0), COALESCE(MAX(co2_saved_kg), 0)").
		Row()

	if err := row.Scan(&agg.TotalCO2SavedKg, &agg.TotalUsers, &agg.AvgCO2PerUser, &agg.MaxCO2PerUser); err != nil {
		return GlobalImpactAggregates{}, err
	}

	return agg, nil
}
