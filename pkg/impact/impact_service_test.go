package impact

import (
	"context"
	"testing"

	"Track2Give-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.FoodItem{}, &entities.ImpactStats{}))

	return db
}

func TestGetUserImpactMissingUserReadsZero(t *testing.T) {
	db := setupTestDB(t)
	service := NewImpactService(NewImpactRepository(db))

	stats, err := service.GetUserImpact(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Zero(t, stats.ItemsSaved)
	assert.Zero(t, stats.ItemsShared)
	assert.Zero(t, stats.CO2SavedKg)
	assert.Zero(t, stats.WaterSavedLiters)
	assert.Zero(t, stats.MoneySavedDollars)

	// Reading must not materialize a row.
	var count int64
	require.NoError(t, db.Model(&entities.ImpactStats{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAccrueConsumption(t *testing.T) {
	db := setupTestDB(t)
	service := NewImpactService(NewImpactRepository(db))

	userID := uuid.New()
	item := &entities.FoodItem{
		ID:             uuid.New(),
		UserID:         userID,
		Category:       "meat",
		Quantity:       2,
		Unit:           "kg",
		EstimatedValue: 10,
	}

	stats, err := service.AccrueConsumption(context.Background(), userID.String(), item)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ItemsSaved)
	assert.Equal(t, 0, stats.ItemsShared)
	assert.InDelta(t, 54.0, stats.CO2SavedKg, 1e-9)
	assert.InDelta(t, 30800.0, stats.WaterSavedLiters, 1e-9)
	assert.InDelta(t, 10.0, stats.MoneySavedDollars, 1e-9)
}

func TestAccrueConsumptionIsMonotonic(t *testing.T) {
	db := setupTestDB(t)
	service := NewImpactService(NewImpactRepository(db))

	userID := uuid.New()
	item := &entities.FoodItem{
		ID:             uuid.New(),
		UserID:         userID,
		Category:       "vegetables",
		Quantity:       1,
		Unit:           "kg",
		EstimatedValue: 2,
	}

	var prev float64
	for i := 1; i <= 5; i++ {
		stats, err := service.AccrueConsumption(context.Background(), userID.String(), item)
		require.NoError(t, err)

		assert.Equal(t, i, stats.ItemsSaved)
		assert.Greater(t, stats.CO2SavedKg, prev)
		prev = stats.CO2SavedKg
	}

	final, err := service.GetUserImpact(context.Background(), userID.String())
	require.NoError(t, err)
	assert.InDelta(t, 2.5, final.CO2SavedKg, 1e-9)
	assert.InDelta(t, 10.0, final.MoneySavedDollars, 1e-9)
}

func TestAccrueShareOnlyBumpsShareCounter(t *testing.T) {
	db := setupTestDB(t)
	service := NewImpactService(NewImpactRepository(db))

	userID := uuid.NewString()

	stats, err := service.AccrueShare(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ItemsShared)
	assert.Equal(t, 0, stats.ItemsSaved)
	assert.Zero(t, stats.CO2SavedKg)
	assert.Zero(t, stats.WaterSavedLiters)

	stats, err = service.AccrueShare(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ItemsShared)
}

func TestCalculatePotentialImpact(t *testing.T) {
	service := NewImpactService(nil)

	items := []*entities.FoodItem{
		{Category: "meat", Quantity: 1, Unit: "kg", EstimatedValue: 8},
		{Category: "vegetables", Quantity: 2, Unit: "kg", EstimatedValue: 3},
	}

	got := service.CalculatePotentialImpact(items)

	assert.Equal(t, 2, got.ItemCount)
	assert.InDelta(t, 28.0, got.CO2SavedKg, 1e-9)
	assert.InDelta(t, 16044.0, got.WaterSavedLiters, 1e-9)
	assert.InDelta(t, 11.0, got.MoneySavedDollars, 1e-9)
}

func TestCalculatePotentialImpactEmpty(t *testing.T) {
	service := NewImpactService(nil)

	got := service.CalculatePotentialImpact(nil)

	assert.Zero(t, got.ItemCount)
	assert.Zero(t, got.CO2SavedKg)
	assert.Zero(t, got.WaterSavedLiters)
	assert.Zero(t, got.MoneySavedDollars)
}
