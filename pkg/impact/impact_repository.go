package impact

import (
	"context"
	"errors"

	"Track2Give-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ImpactRepository interface {
		GetStatsByUserID(ctx context.Context, userID string) (*entities.ImpactStats, error)
		EnsureStats(ctx context.Context, userID string) error
		IncrementConsumption(ctx context.Context, userID string, co2Kg, waterL, moneyUSD float64) error
		IncrementShared(ctx context.Context, userID string) error
	}

	impactRepository struct {
		db *gorm.DB
	}
)

func NewImpactRepository(db *gorm.DB) ImpactRepository {
	return &impactRepository{db: db}
}

func (r *impactRepository) GetStatsByUserID(ctx context.Context, userID string) (*entities.ImpactStats, error) {
	var stats entities.ImpactStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// EnsureStats lazily materializes a zeroed stats row for the user. Used
// only on the write path; reads treat a missing row as all-zero.
func (r *impactRepository) EnsureStats(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	var stats entities.ImpactStats
	err = r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	stats = entities.ImpactStats{
		ID:     uuid.New(),
		UserID: userUUID,
	}
	return r.db.WithContext(ctx).Create(&stats).Error
}

// IncrementConsumption applies a consumption accrual as atomic SQL
// increments, so concurrent accruals for the same user never lose
// updates.
func (r *impactRepository) IncrementConsumption(ctx context.Context, userID string, co2Kg, waterL, moneyUSD float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"items_saved":         gorm.Expr("items_saved + ?", 1),
			"co2_saved_kg":        gorm.Expr("co2_saved_kg + ?", co2Kg),
			"water_saved_liters":  gorm.Expr("water_saved_liters + ?", waterL),
			"money_saved_dollars": gorm.Expr("money_saved_dollars + ?", moneyUSD),
		}).Error
}

// IncrementShared bumps only the donor's share counter. CO2 accrues on
// consumption, not on passing an item along.
func (r *impactRepository) IncrementShared(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.ImpactStats{}).
		Where("user_id = ?", userID).
		Update("items_shared", gorm.Expr("items_shared + ?", 1)).Error
}
